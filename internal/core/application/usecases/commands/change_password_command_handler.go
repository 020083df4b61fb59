package commands

import (
	"context"
	"time"
)

// ChangePasswordCommandHandler handles account password changes.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(uowFactory UserUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the stored password hash for the account.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	aggregate, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePassword(cmd.NewPassword(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
