package commands

import (
	"context"
)

// DeleteUserCommandHandler handles account removal.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for account removal.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. An administrator cannot delete their
// own account.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.UserID().IsEqual(cmd.ActingUser()) {
		return ErrCannotDeleteSelf
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
