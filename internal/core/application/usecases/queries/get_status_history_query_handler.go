package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
)

// GetStatusHistoryQueryHandler retrieves the status ledger of a shipment.
// Author names are resolved with a join so deleted accounts degrade to an
// empty name instead of breaking the ledger.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for ledger queries.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the ledger query, oldest entry first. Returns an error
// matching errs.ErrObjectNotFound when the shipment does not exist, so
// callers can tell a missing shipment apart from an empty ledger.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]StatusHistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM shipments WHERE id = ?`, query.ShipmentID().Bytes()).
		Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	return loadStatusHistory(ctx, h.db, query.ShipmentID().Bytes())
}

// historyRow mirrors the ledger join for scanning.
type historyRow struct {
	ID            uuid.UUID `gorm:"column:id"`
	ShipmentID    uuid.UUID `gorm:"column:shipment_id"`
	Status        string    `gorm:"column:status"`
	Location      *string   `gorm:"column:location"`
	Notes         string    `gorm:"column:notes"`
	CreatedByName *string   `gorm:"column:created_by_name"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func loadStatusHistory(
	ctx context.Context,
	db *gorm.DB,
	shipmentID uuid.UUID,
) ([]StatusHistoryEntryResponse, error) {
	var dbRows []historyRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.shipment_id,
			h.status,
			h.location,
			h.notes,
			u.full_name AS created_by_name,
			h.created_at
		FROM status_history h
		LEFT JOIN users u ON u.id = h.created_by
		WHERE h.shipment_id = ?
		ORDER BY h.created_at ASC
	`, shipmentID).Scan(&dbRows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]StatusHistoryEntryResponse, 0, len(dbRows))
	for _, row := range dbRows {
		entryID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		entryShipmentID, idErr := kernel.UUIDFromBytes(row.ShipmentID[:])
		if idErr != nil {
			return nil, idErr
		}

		createdByName := ""
		if row.CreatedByName != nil {
			createdByName = *row.CreatedByName
		}

		entries = append(entries, StatusHistoryEntryResponse{
			ID:            entryID,
			ShipmentID:    entryShipmentID,
			Status:        row.Status,
			Location:      row.Location,
			Notes:         row.Notes,
			CreatedByName: createdByName,
			CreatedAt:     row.CreatedAt,
		})
	}

	return entries, nil
}
