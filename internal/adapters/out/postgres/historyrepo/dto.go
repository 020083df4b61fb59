// Package historyrepo persists the append-only status history ledger with
// GORM. Entries are only inserted; they leave the table solely through the
// owning shipment's cascading delete.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/adapters/out/postgres/userrepo"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// StatusHistoryDTO represents one ledger row. The shipment foreign key
// cascades on delete; the author foreign key degrades to NULL so the
// ledger survives account removal. The association fields exist only so
// AutoMigrate creates those constraints; the repository never writes
// through them.
type StatusHistoryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:varchar(32);not null"`
	Location   *string    `gorm:"type:varchar(255)"`
	Notes      string     `gorm:"type:text;not null"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null;index"`

	Shipment *shipmentrepo.ShipmentDTO `gorm:"foreignKey:ShipmentID;references:ID;constraint:OnDelete:CASCADE"`
	Author   *userrepo.UserDTO         `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName overrides GORM's default naming to use "status_history".
func (StatusHistoryDTO) TableName() string {
	return "status_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *shipment.StatusHistoryEntry) StatusHistoryDTO {
	var createdBy *uuid.UUID
	if entry.CreatedBy() != nil {
		raw := entry.CreatedBy().Bytes()
		createdBy = &raw
	}

	return StatusHistoryDTO{
		ID:         entry.ID().Bytes(),
		ShipmentID: entry.ShipmentID().Bytes(),
		Status:     entry.Status().String(),
		Location:   entry.Location(),
		Notes:      entry.Notes(),
		CreatedBy:  createdBy,
		CreatedAt:  entry.CreatedAt(),
	}
}

// toDomain converts a database row back to a ledger entry.
func toDomain(dto StatusHistoryDTO) (*shipment.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		author, authorErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if authorErr != nil {
			return nil, authorErr
		}
		createdBy = &author
	}

	return shipment.RestoreStatusHistoryEntry(
		id,
		shipmentID,
		shipment.Status(dto.Status),
		dto.Location,
		dto.Notes,
		createdBy,
		dto.CreatedAt,
	)
}
