package queries

import (
	"errors"
	"time"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/guard"
)

const (
	// DefaultPageLimit is used when the caller asks for a non-positive limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size regardless of what the caller asks for.
	MaxPageLimit = 100
)

var (
	ErrGetShipmentsQueryIsNotConstructed = errors.New(
		"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
	)
)

// ShipmentFilter narrows the shipment listing. Nil fields are ignored.
// Destination is a case-insensitive substring match on the receiver country.
type ShipmentFilter struct {
	Status      *shipment.Status
	Service     *shipment.ServiceType
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// GetShipmentsQuery retrieves a page of shipments, newest first.
type GetShipmentsQuery struct {
	page   int
	limit  int
	filter ShipmentFilter

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a listing query. Non-positive page numbers
// fall back to the first page, non-positive limits to DefaultPageLimit,
// and limits above MaxPageLimit are clamped down.
func NewGetShipmentsQuery(page, limit int, filter ShipmentFilter) (GetShipmentsQuery, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return GetShipmentsQuery{}, err
		}
	}
	if filter.Service != nil {
		if err := filter.Service.Validate(); err != nil {
			return GetShipmentsQuery{}, err
		}
	}

	return GetShipmentsQuery{
		page:   page,
		limit:  limit,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Page returns the requested page number, starting at 1.
func (q GetShipmentsQuery) Page() int {
	return q.page
}

// Limit returns the effective page size.
func (q GetShipmentsQuery) Limit() int {
	return q.limit
}

// Filter returns the listing filter.
func (q GetShipmentsQuery) Filter() ShipmentFilter {
	return q.filter
}

// GetShipmentsQueryResponse bundles one page of shipments with its
// pagination window.
type GetShipmentsQueryResponse struct {
	Shipments  []ShipmentResponse
	Pagination Pagination
}
