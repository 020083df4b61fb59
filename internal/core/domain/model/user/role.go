package user

import (
	"fmt"

	"shipments/internal/pkg/errs"
)

// Role is the closed set of authorization roles.
type Role string

const (
	// RoleAdmin may manage users and delete shipments.
	RoleAdmin Role = "admin"

	// RoleOperator may create and update shipments and append status updates.
	RoleOperator Role = "operator"

	// RoleViewer has read access only.
	RoleViewer Role = "viewer"
)

func validRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:    {},
		RoleOperator: {},
		RoleViewer:   {},
	}
}

// Validate checks that the role belongs to the closed set.
func (r Role) Validate() error {
	if _, ok := validRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

func (r Role) String() string {
	return string(r)
}
