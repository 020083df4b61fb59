package commands

import (
	"context"
)

// DeleteShipmentCommandHandler handles shipment deletion. There is no
// soft-delete; history rows are removed by the cascading constraint.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. Returns an error matching
// errs.ErrObjectNotFound when no shipment existed at the given id.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	if err := uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
