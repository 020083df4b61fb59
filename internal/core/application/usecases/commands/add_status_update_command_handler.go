package commands

import (
	"context"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// AddStatusUpdateCommandHandler handles explicit status transitions.
// The shipment's status field and the new history entry are written in one
// transaction; a concurrent reader never observes one without the other.
type AddStatusUpdateCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddStatusUpdateCommandHandler creates a handler for status transitions.
func NewAddStatusUpdateCommandHandler(uowFactory ShipmentUoWFactory) AddStatusUpdateCommandHandler {
	return AddStatusUpdateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the created history entry.
// The entry is appended even when the supplied status equals the current
// one; the ledger records every transition request, not just changes.
func (h *AddStatusUpdateCommandHandler) Handle(
	ctx context.Context,
	cmd AddStatusUpdateCommand,
) (*shipment.StatusHistoryEntry, error) {
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
	status := cmd.Status()
	if _, err = aggregate.ApplyUpdate(shipment.UpdateData{Status: &status}, now); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := shipment.NewStatusHistoryEntry(
		kernel.NewUUID(),
		aggregate.ID(),
		status,
		cmd.Location(),
		cmd.Notes(),
		cmd.ActingUser(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
