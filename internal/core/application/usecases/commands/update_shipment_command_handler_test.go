package commands_test

import (
	"testing"
	"time"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		validShipmentData(),
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func TestUpdateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := existingShipment(t)
	pieces := 7
	cmd, err := commands.NewUpdateShipmentCommand(
		aggregate.ID(),
		shipment.UpdateData{Pieces: &pieces},
		kernel.NewUUID(),
	)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 7, updated.Data().Pieces)
	assert.Equal(t, shipment.StatusPending, updated.Status())
	shipments.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_StatusChangeAppendsHistory(t *testing.T) {
	ctx := t.Context()
	aggregate := existingShipment(t)
	actingUser := kernel.NewUUID()
	status := shipment.StatusInTransit
	cmd, err := commands.NewUpdateShipmentCommand(
		aggregate.ID(),
		shipment.UpdateData{Status: &status},
		actingUser,
	)
	require.NoError(t, err)

	var appended *shipment.StatusHistoryEntry

	shipments := new(MockShipmentRepository)
	history := new(MockStatusHistoryRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(history).Once(),
		history.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusHistoryEntry")).
			Run(func(args mock.Arguments) { appended = args.Get(1).(*shipment.StatusHistoryEntry) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusInTransit, updated.Status())
	require.NotNil(t, appended)
	assert.True(t, appended.ShipmentID().IsEqual(aggregate.ID()))
	assert.Equal(t, shipment.StatusInTransit, appended.Status())
	assert.Equal(t, shipment.NoteStatusUpdated, appended.Notes())
	history.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_SameStatusStillAppendsHistory(t *testing.T) {
	ctx := t.Context()
	aggregate := existingShipment(t)
	status := shipment.StatusPending // same as current
	cmd, err := commands.NewUpdateShipmentCommand(
		aggregate.ID(),
		shipment.UpdateData{Status: &status},
		kernel.NewUUID(),
	)
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	history := new(MockStatusHistoryRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		shipments.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(history).Once(),
		history.On("Append", mock.Anything, mock.AnythingOfType("*shipment.StatusHistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	history.AssertExpectations(t)
	shipments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	pieces := 3
	cmd, err := commands.NewUpdateShipmentCommand(id, shipment.UpdateData{Pieces: &pieces}, kernel.NewUUID())
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("shipmentId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewUpdateShipmentCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewUpdateShipmentCommand_EmptyPayload(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(kernel.NewUUID(), shipment.UpdateData{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrNoFieldsToUpdate)
}

func TestNewUpdateShipmentCommand_InvalidShipmentID(t *testing.T) {
	pieces := 1
	_, err := commands.NewUpdateShipmentCommand(kernel.UUID{}, shipment.UpdateData{Pieces: &pieces}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
