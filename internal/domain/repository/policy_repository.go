package repository

import (
	"context"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for policy persistence.
var (
	// ErrPolicyNotFound is returned when a policy is not found.
	ErrPolicyNotFound = errors.New("policy not found")
	// ErrDuplicatePolicy is returned when the tenant already has a policy with
	// the same name.
	ErrDuplicatePolicy = errors.New("policy name already exists")
)

// PolicyRepository defines the interface for policy-related database operations.
type PolicyRepository interface {
	// Create persists a new policy.
	Create(ctx context.Context, policy *entity.Policy) error

	// FindByID retrieves a policy by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Policy, error)

	// FindDefault retrieves the tenant's default policy.
	FindDefault(ctx context.Context, resellerID uuid.UUID) (*entity.Policy, error)

	// ListByReseller retrieves all policies of a tenant ordered by name.
	ListByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Policy, error)

	// Update persists name, description, config and default marking, and
	// bumps the version.
	Update(ctx context.Context, policy *entity.Policy) error

	// ClearDefault unsets the default marking on the tenant's current default.
	ClearDefault(ctx context.Context, resellerID uuid.UUID) error

	// Delete removes a policy. Devices must be reassigned beforehand.
	Delete(ctx context.Context, id uuid.UUID) error
}
