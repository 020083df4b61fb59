package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
)

// UpdateShipmentCommand represents a partial update of a shipment. Only the
// fields set in the payload are applied; when the payload includes a status,
// a history entry is appended in the same transaction even if the value is
// unchanged.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	update     shipment.UpdateData
	actingUser kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to apply a partial update.
// A payload with zero recognized fields is rejected here, before any
// transaction is opened.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	update shipment.UpdateData,
	actingUser kernel.UUID,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActingUser(actingUser),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	if update.IsEmpty() {
		return UpdateShipmentCommand{}, shipment.ErrNoFieldsToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the id of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Update returns the partial-update payload.
func (c UpdateShipmentCommand) Update() shipment.UpdateData {
	return c.update
}

// ActingUser returns the id of the user performing the update.
func (c UpdateShipmentCommand) ActingUser() kernel.UUID {
	return c.actingUser
}

func (c *UpdateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *UpdateShipmentCommand) setActingUser(actingUser kernel.UUID) error {
	if err := actingUser.Validate(); err != nil {
		return err
	}
	c.actingUser = actingUser
	return nil
}
