package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)
)

// ChangePasswordCommand represents a password change for an account.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to replace the account password.
func NewChangePasswordCommand(userID kernel.UUID, newPassword string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return ChangePasswordCommand{}, err
	}
	if err := cmd.setNewPassword(newPassword); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// UserID returns the id of the account whose password changes.
func (c ChangePasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// NewPassword returns the plaintext replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("newPassword")
	}
	if len(password) < user.MinPasswordLength {
		return user.ErrPasswordTooShort
	}
	c.newPassword = password
	return nil
}
