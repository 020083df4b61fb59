package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var (
	ErrAddStatusUpdateCommandIsNotConstructed = errors.New(
		"AddStatusUpdateCommand must be created via NewAddStatusUpdateCommand constructor",
	)
)

// AddStatusUpdateCommand represents an explicit status transition on a
// shipment: the status field update and the history append as one logical
// unit, with optional location and notes on the entry.
type AddStatusUpdateCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status
	location   *string
	notes      string
	actingUser kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddStatusUpdateCommand creates a command to record a status transition.
// Notes may be empty; the history entry then carries the synthetic default.
func NewAddStatusUpdateCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
	location *string,
	notes string,
	actingUser kernel.UUID,
) (AddStatusUpdateCommand, error) {
	cmd := AddStatusUpdateCommand{
		location: location,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
		cmd.setActingUser(actingUser),
	); err != nil {
		return AddStatusUpdateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStatusUpdateCommand) Validate() error {
	return c.guard.Validate(ErrAddStatusUpdateCommandIsNotConstructed)
}

// ShipmentID returns the id of the shipment to transition.
func (c AddStatusUpdateCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the new status value.
func (c AddStatusUpdateCommand) Status() shipment.Status {
	return c.status
}

// Location returns the optional location recorded on the entry.
func (c AddStatusUpdateCommand) Location() *string {
	return c.location
}

// Notes returns the caller-supplied notes, possibly empty.
func (c AddStatusUpdateCommand) Notes() string {
	return c.notes
}

// ActingUser returns the id of the user recording the transition.
func (c AddStatusUpdateCommand) ActingUser() kernel.UUID {
	return c.actingUser
}

func (c *AddStatusUpdateCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AddStatusUpdateCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *AddStatusUpdateCommand) setActingUser(actingUser kernel.UUID) error {
	if err := actingUser.Validate(); err != nil {
		return err
	}
	c.actingUser = actingUser
	return nil
}
