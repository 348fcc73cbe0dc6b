package usecase

import (
	"context"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GrantLicensesInput defines the data required to grant licenses to a reseller.
type GrantLicensesInput struct {
	ResellerID uuid.UUID
	Count      int
}

// --- Output DTOs ---

// GrantLicensesOutput returns the newly granted licenses.
type GrantLicensesOutput struct {
	Licenses []*entity.License
}

// LicenseUsecase defines the interface for license pool operations.
// Granting is administrator-only; summaries are tenant-scoped.
type LicenseUsecase interface {
	// GrantLicenses creates a batch of AVAILABLE licenses for a reseller.
	GrantLicenses(ctx context.Context, actor Actor, input GrantLicensesInput) (*GrantLicensesOutput, error)

	// ListLicenses retrieves all licenses of a reseller.
	ListLicenses(ctx context.Context, actor Actor, resellerID uuid.UUID) ([]*entity.License, error)

	// GetSummary returns the reseller's license counters.
	GetSummary(ctx context.Context, actor Actor, resellerID uuid.UUID) (*entity.LicenseSummary, error)
}
