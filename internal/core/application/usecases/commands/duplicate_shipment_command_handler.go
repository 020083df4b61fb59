package commands

import (
	"context"

	"shipments/internal/core/domain/model/shipment"
)

// DuplicateShipmentCommandHandler clones an existing shipment: it reads the
// source, strips identity and audit fields, applies the invoice-type
// override, and creates the copy the same way a fresh shipment is created,
// fresh tracking number and pending history included.
type DuplicateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDuplicateShipmentCommandHandler creates a handler for shipment duplication.
func NewDuplicateShipmentCommandHandler(uowFactory ShipmentUoWFactory) DuplicateShipmentCommandHandler {
	return DuplicateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duplication and returns the newly created shipment.
func (h *DuplicateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd DuplicateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	source, err := uow.ShipmentRepository().Get(ctx, cmd.SourceID())
	if err != nil {
		return nil, err
	}

	data := source.Data()
	if cmd.InvoiceType() != "" {
		data.InvoiceType = cmd.InvoiceType()
	}

	return createWithFreshTrackingNumber(ctx, h.uowFactory, data, cmd.ActingUser())
}
