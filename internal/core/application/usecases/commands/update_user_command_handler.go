package commands

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/user"
)

// UpdateUserCommandHandler handles partial account updates.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for account updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update and returns the updated user.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	aggregate, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Update(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
