package commands

import (
	"context"
	"errors"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
)

// maxTrackingNumberAttempts bounds the regenerate-and-retry loop when a
// generated tracking number collides with an existing one. The millisecond
// timestamp plus random suffix makes collisions rare but not impossible;
// the uniqueness invariant is absolute, so the store's constraint is the
// final arbiter and this loop absorbs the occasional conflict.
const maxTrackingNumberAttempts = 5

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Creates shipments in pending status with a freshly generated tracking number
// and the initial history entry, all within one transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the persisted
// aggregate including its generated tracking number.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return createWithFreshTrackingNumber(ctx, h.uowFactory, cmd.Data(), cmd.ActingUser())
}

// createWithFreshTrackingNumber persists a new shipment together with its
// initial pending history entry in one transaction. On a tracking-number
// collision the transaction is rolled back and the whole unit retried with
// a newly generated number, up to maxTrackingNumberAttempts.
// Shared by the create and duplicate handlers.
func createWithFreshTrackingNumber(
	ctx context.Context,
	uowFactory ShipmentUoWFactory,
	data shipment.Data,
	actingUser kernel.UUID,
) (*shipment.Shipment, error) {
	var lastErr error

	for attempt := 0; attempt < maxTrackingNumberAttempts; attempt++ {
		created, err := persistNewShipment(ctx, uowFactory.Create(), data, actingUser)
		if err == nil {
			return created, nil
		}

		lastErr = err
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
	}

	return nil, lastErr
}

func persistNewShipment(
	ctx context.Context,
	uow ShipmentUoW,
	data shipment.Data,
	actingUser kernel.UUID,
) (*shipment.Shipment, error) {
	now := time.Now().UTC()

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		data,
		actingUser,
		now,
	)
	if err != nil {
		return nil, err
	}

	entry, err := shipment.NewStatusHistoryEntry(
		kernel.NewUUID(),
		aggregate.ID(),
		shipment.StatusPending,
		nil,
		shipment.NoteShipmentCreated,
		actingUser,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
