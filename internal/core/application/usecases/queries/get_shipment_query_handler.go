package queries

import (
	"context"

	"gorm.io/gorm"

	"shipments/internal/pkg/errs"
)

// GetShipmentQueryHandler retrieves a single shipment from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error matching errs.ErrObjectNotFound
// when no shipment has the requested id.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	var row shipmentRow
	res := h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Scan(&row)
	if res.Error != nil {
		return ShipmentResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	return row.toResponse()
}
