package commands

import (
	"errors"

	"shipments/internal/core/domain/model/user"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand represents registering a new account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	fullName string
	phone    string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
// Email uniqueness is enforced by the store's constraint during handling.
func NewCreateUserCommand(email, password, fullName, phone string, role user.Role) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		password: password,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setFullName(fullName),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Email returns the new account's email address.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to hash during handling.
func (c CreateUserCommand) Password() string {
	return c.password
}

// FullName returns the display name.
func (c CreateUserCommand) FullName() string {
	return c.fullName
}

// Phone returns the optional phone number.
func (c CreateUserCommand) Phone() string {
	return c.phone
}

// Role returns the authorization role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateUserCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
