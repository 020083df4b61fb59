package queries

import (
	"errors"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
)

// TrackShipmentQuery retrieves a shipment and its full status ledger by
// tracking number. This backs the public tracking page, so no account
// information beyond author names leaves the system.
type TrackShipmentQuery struct {
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a tracking query for the given number.
func NewTrackShipmentQuery(trackingNumber shipment.TrackingNumber) (TrackShipmentQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return TrackShipmentQuery{}, err
	}

	return TrackShipmentQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the number to look up.
func (q TrackShipmentQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}

// TrackShipmentQueryResponse bundles the shipment with its status ledger,
// oldest entry first.
type TrackShipmentQueryResponse struct {
	Shipment ShipmentResponse
	History  []StatusHistoryEntryResponse
}
