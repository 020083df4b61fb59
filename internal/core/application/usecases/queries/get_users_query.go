package queries

import (
	"errors"

	"shipments/internal/pkg/guard"
)

var (
	ErrGetUsersQueryIsNotConstructed = errors.New(
		"GetUsersQuery must be created via NewGetUsersQuery constructor",
	)
)

// GetUsersQuery retrieves all accounts for administration screens.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query to retrieve all accounts.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}
