package commands

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// UpdateShipmentCommandHandler handles partial shipment updates.
// When the payload carries a status, the status field write and the history
// append become visible together or not at all.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for partial update operations.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated aggregate.
func (h *UpdateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentCommand,
) (*shipment.Shipment, error) {
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

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	statusChanged, err := aggregate.ApplyUpdate(cmd.Update(), now)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if statusChanged {
		entry, entryErr := shipment.NewStatusHistoryEntry(
			kernel.NewUUID(),
			aggregate.ID(),
			aggregate.Status(),
			nil,
			shipment.NoteStatusUpdated,
			cmd.ActingUser(),
			now,
		)
		if entryErr != nil {
			return nil, entryErr
		}

		if err = uow.StatusHistoryRepository().Append(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
