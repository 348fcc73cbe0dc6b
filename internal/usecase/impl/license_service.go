// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"

	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/domain/service"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxGrantBatch = 1000

type licenseService struct {
	licenseRepo   repository.LicenseRepository
	resellerRepo  repository.ResellerRepository
	codeGenerator service.CodeGenerator
}

// LicenseServiceParams holds dependencies for LicenseService, injected by Fx.
type LicenseServiceParams struct {
	fx.In

	LicenseRepo   repository.LicenseRepository
	ResellerRepo  repository.ResellerRepository
	CodeGenerator service.CodeGenerator
}

// NewLicenseService creates a new license service instance
func NewLicenseService(params LicenseServiceParams) usecase.LicenseUsecase {
	return &licenseService{
		licenseRepo:   params.LicenseRepo,
		resellerRepo:  params.ResellerRepo,
		codeGenerator: params.CodeGenerator,
	}
}

// GrantLicenses creates a batch of AVAILABLE licenses for a reseller.
func (s *licenseService) GrantLicenses(ctx context.Context, actor usecase.Actor, input usecase.GrantLicensesInput) (*usecase.GrantLicensesOutput, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	if input.Count <= 0 || input.Count > maxGrantBatch {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("license count out of range")
	}

	// The grant must target an existing tenant.
	if _, err := s.resellerRepo.FindByID(ctx, input.ResellerID); err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			return nil, domainerrors.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller")
	}

	licenses := make([]*entity.License, 0, input.Count)
	for range input.Count {
		key, err := s.codeGenerator.LicenseKey()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate license key")
		}

		licenses = append(licenses, &entity.License{
			Key:        key,
			ResellerID: input.ResellerID,
			State:      entity.LicenseStateAvailable,
		})
	}

	if err := s.licenseRepo.CreateBatch(ctx, licenses); err != nil {
		return nil, errors.Wrap(err, "failed to create licenses")
	}

	return &usecase.GrantLicensesOutput{Licenses: licenses}, nil
}

// ListLicenses retrieves all licenses of a reseller.
func (s *licenseService) ListLicenses(ctx context.Context, actor usecase.Actor, resellerID uuid.UUID) ([]*entity.License, error) {
	if !actor.CanAccess(resellerID) {
		return nil, domainerrors.ErrForbidden
	}

	licenses, err := s.licenseRepo.ListByReseller(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list licenses")
	}

	return licenses, nil
}

// GetSummary returns the reseller's license counters.
func (s *licenseService) GetSummary(ctx context.Context, actor usecase.Actor, resellerID uuid.UUID) (*entity.LicenseSummary, error) {
	if !actor.CanAccess(resellerID) {
		return nil, domainerrors.ErrForbidden
	}

	summary, err := s.licenseRepo.Summary(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize licenses")
	}

	return summary, nil
}
