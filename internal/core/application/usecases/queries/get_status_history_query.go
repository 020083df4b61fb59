package queries

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/guard"
)

var (
	ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
		"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
	)
)

// GetStatusHistoryQuery retrieves the status ledger of one shipment.
type GetStatusHistoryQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a ledger query for the given shipment.
func NewGetStatusHistoryQuery(shipmentID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}

	return GetStatusHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// ShipmentID returns the id of the shipment whose ledger to fetch.
func (q GetStatusHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}
