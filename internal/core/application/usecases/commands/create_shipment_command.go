package commands

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a new shipment.
// Any status supplied by the caller is ignored; every shipment starts
// pending with one matching history entry.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(data, actingUserID)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	data        shipment.Data
	actingUser  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment
// attributed to actingUser. Enumerations and numeric bounds are validated
// by the shipment constructor during handling; here only the attribution
// is checked.
func NewCreateShipmentCommand(data shipment.Data, actingUser kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setData(data),
		cmd.setActingUser(actingUser),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Data returns the shipment attributes to persist.
func (c CreateShipmentCommand) Data() shipment.Data {
	return c.data
}

// ActingUser returns the id of the user performing the creation.
func (c CreateShipmentCommand) ActingUser() kernel.UUID {
	return c.actingUser
}

func (c *CreateShipmentCommand) setData(data shipment.Data) error {
	c.data = data
	return nil
}

func (c *CreateShipmentCommand) setActingUser(actingUser kernel.UUID) error {
	if err := actingUser.Validate(); err != nil {
		return err
	}
	c.actingUser = actingUser
	return nil
}
