package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves pages of shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment listing queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered by creation time, newest
// first, and the pagination window reflects the filtered total.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) (GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	where, args := buildShipmentFilter(query.Filter())

	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM shipments`+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	listArgs := append(args, query.Limit(), offset)

	var dbRows []shipmentRow
	err = h.db.WithContext(ctx).Raw(`
		SELECT`+shipmentColumns+`
		FROM shipments`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, listArgs...).Scan(&dbRows).Error
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	shipmentList := make([]ShipmentResponse, 0, len(dbRows))
	for _, row := range dbRows {
		resp, convErr := row.toResponse()
		if convErr != nil {
			return GetShipmentsQueryResponse{}, convErr
		}
		shipmentList = append(shipmentList, resp)
	}

	totalPages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return GetShipmentsQueryResponse{
		Shipments: shipmentList,
		Pagination: Pagination{
			Total:      total,
			Page:       query.Page(),
			Limit:      query.Limit(),
			TotalPages: totalPages,
		},
	}, nil
}

func buildShipmentFilter(filter ShipmentFilter) (string, []any) {
	conditions := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.Service != nil {
		conditions = append(conditions, "service = ?")
		args = append(args, filter.Service.String())
	}
	if filter.Destination != nil && *filter.Destination != "" {
		conditions = append(conditions, "receiver_country ILIKE ?")
		args = append(args, "%"+*filter.Destination+"%")
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *filter.EndDate)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "\n\t\tWHERE " + strings.Join(conditions, " AND "), args
}
