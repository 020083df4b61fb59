package commands

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles account registration.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for account registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the persisted user.
// A duplicate email surfaces as an error matching errs.ErrObjectAlreadyExists.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		cmd.Password(),
		cmd.FullName(),
		cmd.Phone(),
		cmd.Role(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
