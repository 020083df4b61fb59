// Package ports defines repository interfaces for the shipment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment. A tracking-number collision surfaces as
	// an error matching errs.ErrObjectAlreadyExists so the caller can
	// regenerate and retry.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	// Returns an error matching errs.ErrObjectNotFound when no row exists.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its internal id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its public tracking number.
	GetByTrackingNumber(ctx context.Context, tn shipment.TrackingNumber) (*shipment.Shipment, error)

	// Delete removes a shipment; its history rows cascade. Returns an error
	// matching errs.ErrObjectNotFound when no row existed to delete.
	Delete(ctx context.Context, id kernel.UUID) error
}
