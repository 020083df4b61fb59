package queries

import (
	"context"

	"gorm.io/gorm"

	"shipments/internal/pkg/errs"
)

// GetUserQueryHandler retrieves a single account from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-account queries.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error matching errs.ErrObjectNotFound
// when no account has the requested id.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var row userRow
	res := h.db.WithContext(ctx).Raw(`
		SELECT`+userColumns+`
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Scan(&row)
	if res.Error != nil {
		return UserResponse{}, res.Error
	}
	if res.RowsAffected == 0 {
		return UserResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	return row.toResponse()
}
