package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/guard"
)

var (
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)

	// ErrCannotDeleteSelf is returned when an administrator tries to delete
	// their own account.
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
)

// DeleteUserCommand represents the removal of an account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	actingUser kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete the account with the given id.
// actingUser identifies the administrator performing the deletion.
func NewDeleteUserCommand(userID kernel.UUID, actingUser kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}
	if err := cmd.setActingUser(actingUser); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the id of the account to delete.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

// ActingUser returns the id of the administrator requesting the deletion.
func (c DeleteUserCommand) ActingUser() kernel.UUID {
	return c.actingUser
}

func (c *DeleteUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *DeleteUserCommand) setActingUser(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingUser = id
	return nil
}
