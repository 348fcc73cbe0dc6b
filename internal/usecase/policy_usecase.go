package usecase

import (
	"context"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePolicyInput defines the data required to create a policy.
type CreatePolicyInput struct {
	Name        string
	Description string
	IsDefault   bool
	Config      entity.PolicyConfig
}

// UpdatePolicyInput defines the data required to update a policy.
type UpdatePolicyInput struct {
	PolicyID    uuid.UUID
	Name        string
	Description string
	IsDefault   bool
	Config      entity.PolicyConfig
}

// PolicyUsecase defines the interface for policy management.
// Policies are tenant-scoped; exactly one per tenant carries the default
// marking and inherits devices from deleted policies.
type PolicyUsecase interface {
	// CreatePolicy persists a new policy. Marking it default unsets the
	// previous default in the same transaction.
	CreatePolicy(ctx context.Context, actor Actor, input CreatePolicyInput) (*entity.Policy, error)

	// GetPolicy retrieves one policy of the actor's tenant.
	GetPolicy(ctx context.Context, actor Actor, policyID uuid.UUID) (*entity.Policy, error)

	// ListPolicies retrieves the tenant's policies ordered by name.
	ListPolicies(ctx context.Context, actor Actor, resellerID uuid.UUID) ([]*entity.Policy, error)

	// UpdatePolicy persists changes, bumps the version and publishes an
	// apply intent to every device assigned to the policy.
	UpdatePolicy(ctx context.Context, actor Actor, input UpdatePolicyInput) (*entity.Policy, error)

	// DuplicatePolicy copies a policy under a derived name.
	DuplicatePolicy(ctx context.Context, actor Actor, policyID uuid.UUID) (*entity.Policy, error)

	// DeletePolicy removes a non-default policy, reassigning its devices to
	// the tenant default in the same transaction.
	DeletePolicy(ctx context.Context, actor Actor, policyID uuid.UUID) error

	// AssignPolicy records a policy on a device and publishes an apply intent.
	AssignPolicy(ctx context.Context, actor Actor, deviceID, policyID uuid.UUID) error
}
