package commands_test

import (
	"testing"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteUserCommand(id, kernel.NewUUID())
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_SelfDeleteRejected(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteUserCommand(id, id)
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)
	h := commands.NewDeleteUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotDeleteSelf)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteUserCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteUserCommand(id, kernel.NewUUID())
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Delete", mock.Anything, id).Return(errs.NewObjectNotFoundError("userId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteUserCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewDeleteUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
