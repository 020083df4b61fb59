// Package userrepo persists user accounts with GORM.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"
)

// UserDTO represents the database row for an account. Emails are stored
// lowercased and carry a unique index.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(64)"`
	Role         string    `gorm:"type:varchar(32);not null"`
	IsActive     bool      `gorm:"type:boolean;not null"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FullName:     aggregate.FullName(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row back to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FullName,
		dto.Phone,
		user.Role(dto.Role),
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
