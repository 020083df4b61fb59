package queries

import (
	"context"

	"gorm.io/gorm"

	"shipments/internal/pkg/errs"
)

// TrackShipmentQueryHandler resolves a tracking number to a shipment and
// its status ledger.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking lookups.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error matching errs.ErrObjectNotFound
// when no shipment carries the requested tracking number.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var row shipmentRow
	res := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Scan(&row)
	if res.Error != nil {
		return TrackShipmentQueryResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber(),
		)
	}

	shipmentResp, err := row.toResponse()
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	history, err := loadStatusHistory(ctx, h.db, row.ID)
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	return TrackShipmentQueryResponse{
		Shipment: shipmentResp,
		History:  history,
	}, nil
}
