package ports

import (
	"context"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// StatusHistoryRepository defines the persistence contract for the
// append-only status history ledger. Entries are only ever inserted;
// removal happens solely through the owning shipment's cascading delete.
type StatusHistoryRepository interface {
	// Append persists a new history entry for its shipment.
	Append(ctx context.Context, entry *shipment.StatusHistoryEntry) error

	// ListFor retrieves all entries for a shipment ordered ascending by
	// creation time (oldest first).
	ListFor(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.StatusHistoryEntry, error)
}
