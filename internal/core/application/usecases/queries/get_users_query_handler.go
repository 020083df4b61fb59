package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shipments/internal/core/domain/model/kernel"
)

// GetUsersQueryHandler retrieves all accounts from the database.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for account listing queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// userRow mirrors the users table without the password hash.
type userRow struct {
	ID        uuid.UUID `gorm:"column:id"`
	Email     string    `gorm:"column:email"`
	FullName  string    `gorm:"column:full_name"`
	Phone     string    `gorm:"column:phone"`
	Role      string    `gorm:"column:role"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (r userRow) toResponse() (UserResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return UserResponse{}, err
	}

	return UserResponse{
		ID:        id,
		Email:     r.Email,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Role:      r.Role,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

const userColumns = `
		id,
		email,
		full_name,
		phone,
		role,
		is_active,
		created_at,
		updated_at`

// Handle executes the query to retrieve all accounts, newest first.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var dbRows []userRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`).Scan(&dbRows).Error
	if err != nil {
		return nil, err
	}

	users := make([]UserResponse, 0, len(dbRows))
	for _, row := range dbRows {
		resp, convErr := row.toResponse()
		if convErr != nil {
			return nil, convErr
		}
		users = append(users, resp)
	}

	return users, nil
}
