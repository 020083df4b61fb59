package commands_test

import (
	"testing"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/user"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand(
		"Ops@Example.com", "s3cret77", "Operations Desk", "+971501234567", user.RoleOperator)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "ops@example.com", created.Email())
	assert.Equal(t, user.RoleOperator, created.Role())
	assert.True(t, created.IsActive())
	assert.NoError(t, created.CheckPassword("s3cret77"))
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand(
		"ops@example.com", "s3cret77", "Operations Desk", "", user.RoleViewer)
	require.NoError(t, err)

	duplicate := errs.NewObjectAlreadyExistsError("email", "ops@example.com")

	users := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_PasswordTooShort(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand(
		"ops@example.com", "abc", "Operations Desk", "", user.RoleViewer)
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)
	h := commands.NewCreateUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrPasswordTooShort)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateUserCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewCreateUserCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewCreateUserCommand_MissingFields(t *testing.T) {
	_, err := commands.NewCreateUserCommand("", "s3cret77", "", "", user.RoleAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateUserCommand("ops@example.com", "s3cret77", "Operations Desk", "", "superuser")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
