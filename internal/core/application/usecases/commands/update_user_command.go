package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"
	"shipments/internal/pkg/guard"
)

var (
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
)

// UpdateUserCommand represents a partial update of an account.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	update user.UpdateData

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to apply a partial account update.
func NewUpdateUserCommand(userID kernel.UUID, update user.UpdateData) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the id of the account to update.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Update returns the partial-update payload.
func (c UpdateUserCommand) Update() user.UpdateData {
	return c.update
}

func (c *UpdateUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}
