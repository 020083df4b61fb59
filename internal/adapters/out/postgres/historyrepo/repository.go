package historyrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
type GormStatusHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStatusHistoryRepository creates a new GORM ledger repository.
func NewGormStatusHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts a new ledger entry.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, entry *shipment.StatusHistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// ListFor retrieves all entries for a shipment, oldest first. A shipment
// with no entries yields an empty slice, not an error; distinguishing a
// missing shipment is the caller's concern.
func (r *GormStatusHistoryRepository) ListFor(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.StatusHistoryEntry, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*shipment.StatusHistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
