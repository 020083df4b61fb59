package commands_test

import (
	"errors"
	"testing"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actingUser := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentData(), actingUser)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	history := new(MockStatusHistoryRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(history).Once(),
		history.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusHistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, shipment.StatusPending, created.Status())
	assert.NoError(t, created.TrackingNumber().Validate())
	assert.True(t, created.CreatedBy().IsEqual(actingUser))
	shipments.AssertExpectations(t)
	history.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_InitialEntryMatchesShipment(t *testing.T) {
	ctx := t.Context()
	actingUser := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentData(), actingUser)
	require.NoError(t, err)

	var added *shipment.Shipment
	var appended *shipment.StatusHistoryEntry

	shipments := new(MockShipmentRepository)
	shipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*shipment.Shipment) }).
		Return(nil).Once()
	history := new(MockStatusHistoryRepository)
	history.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusHistoryEntry")).
		Run(func(args mock.Arguments) { appended = args.Get(1).(*shipment.StatusHistoryEntry) }).
		Return(nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	uow.On("StatusHistoryRepository").Return(history).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, added)
	require.NotNil(t, appended)
	assert.True(t, appended.ShipmentID().IsEqual(added.ID()))
	assert.Equal(t, shipment.StatusPending, appended.Status())
	assert.Equal(t, shipment.NoteShipmentCreated, appended.Notes())
	require.NotNil(t, appended.CreatedBy())
	assert.True(t, appended.CreatedBy().IsEqual(actingUser))
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentData(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockShipmentUoW)
	factory := new(MockShipmentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateShipmentCommandHandler_Handle_RetriesOnTrackingNumberCollision(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentData(), kernel.NewUUID())
	require.NoError(t, err)

	collision := errs.NewObjectAlreadyExistsError("trackingNumber", "CN17000000000000")

	firstShipments := new(MockShipmentRepository)
	firstUow := new(MockShipmentUoW)
	mock.InOrder(
		firstUow.On("Begin", ctx).Return(nil).Once(),
		firstUow.On("ShipmentRepository").Return(firstShipments).Once(),
		firstShipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(collision).Once(),
		firstUow.On("Rollback", ctx).Return(nil).Once(),
	)

	secondShipments := new(MockShipmentRepository)
	secondHistory := new(MockStatusHistoryRepository)
	secondUow := new(MockShipmentUoW)
	mock.InOrder(
		secondUow.On("Begin", ctx).Return(nil).Once(),
		secondUow.On("ShipmentRepository").Return(secondShipments).Once(),
		secondShipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		secondUow.On("StatusHistoryRepository").Return(secondHistory).Once(),
		secondHistory.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusHistoryEntry")).Return(nil).Once(),
		secondUow.On("Commit", ctx).Return(nil).Once(),
		secondUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(firstUow).Once()
	factory.On("Create").Return(secondUow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	firstUow.AssertExpectations(t)
	secondUow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentData(), kernel.NewUUID())
	require.NoError(t, err)

	collision := errs.NewObjectAlreadyExistsError("trackingNumber", "CN17000000000000")

	shipments := new(MockShipmentRepository)
	shipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(collision).Times(5)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Times(5)
	uow.On("ShipmentRepository").Return(shipments).Times(5)
	uow.On("Rollback", ctx).Return(nil).Times(5)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Times(5)

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	shipments.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_NonCollisionErrorDoesNotRetry(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(validShipmentData(), kernel.NewUUID())
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}
