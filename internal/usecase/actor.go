// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"mdm/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller on behalf of whom an operation
// runs. Admin actors operate across tenants; reseller actors are scoped to
// their own ID.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsAdmin reports whether the actor operates across all tenants.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanAccess reports whether the actor may touch resources of the given tenant.
func (a Actor) CanAccess(resellerID uuid.UUID) bool {
	return a.IsAdmin() || a.ID == resellerID
}
