package queries

import (
	"errors"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/guard"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// GetUserQuery retrieves a single account by its id.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query for the account with the given id.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the id of the account to fetch.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}
