package usecase

import (
	"context"

	"mdm/internal/domain/entity"
	"mdm/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a console login.
type LoginInput struct {
	Email    string
	Password string
}

// CreateResellerInput defines the data required to register a reseller tenant.
type CreateResellerInput struct {
	BusinessName string
	Email        string
	Password     string
	ContactPhone string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Role         entity.Role
	Reseller     *entity.Reseller // nil for admin sessions.
}

// ResellerDashboardOutput aggregates the counters shown on the reseller home screen.
type ResellerDashboardOutput struct {
	Licenses *entity.LicenseSummary
	Devices  *repository.DeviceSummary
}

// AdminDashboardOutput aggregates the counters shown on the admin home screen.
type AdminDashboardOutput struct {
	Resellers int64
	Licenses  int64
	Devices   int64
}

// AccountUsecase defines the interface for console sessions and tenant management.
type AccountUsecase interface {
	// Login authenticates either the configured administrator or a reseller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CreateReseller registers a new tenant. Admin only.
	CreateReseller(ctx context.Context, actor Actor, input CreateResellerInput) (*entity.Reseller, error)

	// GetReseller retrieves one tenant.
	GetReseller(ctx context.Context, actor Actor, resellerID uuid.UUID) (*entity.Reseller, error)

	// ListResellers retrieves all tenants ordered by business name. Admin only.
	ListResellers(ctx context.Context, actor Actor) ([]*entity.Reseller, error)

	// ResellerDashboard aggregates the tenant's license and device counters.
	ResellerDashboard(ctx context.Context, actor Actor, resellerID uuid.UUID) (*ResellerDashboardOutput, error)

	// AdminDashboard aggregates system-wide counters. Admin only.
	AdminDashboard(ctx context.Context, actor Actor) (*AdminDashboardOutput, error)
}
