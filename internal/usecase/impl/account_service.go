package impl

import (
	"context"
	"strings"

	"mdm/config"
	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/domain/service"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	resellerRepo   repository.ResellerRepository
	licenseRepo    repository.LicenseRepository
	deviceRepo     repository.DeviceRepository
	tokenService   service.TokenService
	passwordHasher service.PasswordHasher
	config         *config.Config
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	ResellerRepo   repository.ResellerRepository
	LicenseRepo    repository.LicenseRepository
	DeviceRepo     repository.DeviceRepository
	TokenService   service.TokenService
	PasswordHasher service.PasswordHasher
	Config         *config.Config
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		resellerRepo:   params.ResellerRepo,
		licenseRepo:    params.LicenseRepo,
		deviceRepo:     params.DeviceRepo,
		tokenService:   params.TokenService,
		passwordHasher: params.PasswordHasher,
		config:         params.Config,
	}
}

// Login authenticates either the configured administrator or a reseller.
func (s *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email and password are required")
	}

	// The administrator account lives in configuration, not in the database.
	if s.config.Admin != nil && strings.EqualFold(email, s.config.Admin.Email) {
		return s.loginAdmin(input.Password)
	}

	return s.loginReseller(ctx, email, input.Password)
}

func (s *accountService) loginAdmin(password string) (*usecase.LoginOutput, error) {
	if !s.passwordHasher.Check(password, s.config.Admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(uuid.Nil, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         entity.RoleAdmin,
	}, nil
}

func (s *accountService) loginReseller(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	reseller, err := s.resellerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find reseller by email")
	}

	if !reseller.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is deactivated")
	}

	if !s.passwordHasher.Check(password, reseller.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(reseller.ID, entity.RoleReseller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         entity.RoleReseller,
		Reseller:     reseller,
	}, nil
}

// CreateReseller registers a new tenant. Admin only.
func (s *accountService) CreateReseller(ctx context.Context, actor usecase.Actor, input usecase.CreateResellerInput) (*entity.Reseller, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || input.BusinessName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("business name, email and password are required")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	reseller := &entity.Reseller{
		BusinessName: input.BusinessName,
		Email:        email,
		PasswordHash: hash,
		ContactPhone: input.ContactPhone,
		IsActive:     true,
	}

	if err := s.resellerRepo.Create(ctx, reseller); err != nil {
		if errors.Is(err, repository.ErrDuplicateReseller) {
			return nil, domainerrors.ErrResellerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create reseller")
	}

	return reseller, nil
}

// GetReseller retrieves one tenant.
func (s *accountService) GetReseller(ctx context.Context, actor usecase.Actor, resellerID uuid.UUID) (*entity.Reseller, error) {
	if !actor.CanAccess(resellerID) {
		return nil, domainerrors.ErrForbidden
	}

	reseller, err := s.resellerRepo.FindByID(ctx, resellerID)
	if err != nil {
		if errors.Is(err, repository.ErrResellerNotFound) {
			return nil, domainerrors.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller")
	}

	return reseller, nil
}

// ListResellers retrieves all tenants ordered by business name. Admin only.
func (s *accountService) ListResellers(ctx context.Context, actor usecase.Actor) ([]*entity.Reseller, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	resellers, err := s.resellerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resellers")
	}

	return resellers, nil
}

// ResellerDashboard aggregates the tenant's license and device counters.
func (s *accountService) ResellerDashboard(ctx context.Context, actor usecase.Actor, resellerID uuid.UUID) (*usecase.ResellerDashboardOutput, error) {
	if !actor.CanAccess(resellerID) {
		return nil, domainerrors.ErrForbidden
	}

	licenses, err := s.licenseRepo.Summary(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize licenses")
	}

	devices, err := s.deviceRepo.Summary(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize devices")
	}

	return &usecase.ResellerDashboardOutput{
		Licenses: licenses,
		Devices:  devices,
	}, nil
}

// AdminDashboard aggregates system-wide counters. Admin only.
func (s *accountService) AdminDashboard(ctx context.Context, actor usecase.Actor) (*usecase.AdminDashboardOutput, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	resellers, err := s.resellerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count resellers")
	}

	licenses, err := s.licenseRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count licenses")
	}

	devices, err := s.deviceRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}

	return &usecase.AdminDashboardOutput{
		Resellers: resellers,
		Licenses:  licenses,
		Devices:   devices,
	}, nil
}
