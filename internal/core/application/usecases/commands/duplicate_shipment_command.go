package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var (
	ErrDuplicateShipmentCommandIsNotConstructed = errors.New(
		"DuplicateShipmentCommand must be created via NewDuplicateShipmentCommand constructor",
	)
)

// DuplicateShipmentCommand represents cloning an existing shipment into a
// brand-new one. The copy never carries the source's tracking number,
// status, or history: it gets a fresh identity and starts pending.
type DuplicateShipmentCommand struct { //nolint:recvcheck //using for validation
	sourceID    kernel.UUID
	invoiceType shipment.InvoiceType
	actingUser  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDuplicateShipmentCommand creates a command to duplicate a shipment.
// invoiceType overrides the source's invoice type; the empty value keeps it.
func NewDuplicateShipmentCommand(
	sourceID kernel.UUID,
	invoiceType shipment.InvoiceType,
	actingUser kernel.UUID,
) (DuplicateShipmentCommand, error) {
	cmd := DuplicateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSourceID(sourceID),
		cmd.setInvoiceType(invoiceType),
		cmd.setActingUser(actingUser),
	); err != nil {
		return DuplicateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DuplicateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDuplicateShipmentCommandIsNotConstructed)
}

// SourceID returns the id of the shipment to clone.
func (c DuplicateShipmentCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// InvoiceType returns the override, empty when the source's value is kept.
func (c DuplicateShipmentCommand) InvoiceType() shipment.InvoiceType {
	return c.invoiceType
}

// ActingUser returns the id of the user performing the duplication.
func (c DuplicateShipmentCommand) ActingUser() kernel.UUID {
	return c.actingUser
}

func (c *DuplicateShipmentCommand) setSourceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sourceID = id
	return nil
}

func (c *DuplicateShipmentCommand) setInvoiceType(invoiceType shipment.InvoiceType) error {
	if err := invoiceType.Validate(); err != nil {
		return err
	}
	c.invoiceType = invoiceType
	return nil
}

func (c *DuplicateShipmentCommand) setActingUser(actingUser kernel.UUID) error {
	if err := actingUser.Validate(); err != nil {
		return err
	}
	c.actingUser = actingUser
	return nil
}
