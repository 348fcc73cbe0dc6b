package impl

import (
	"context"
	"testing"

	"mdm/config"
	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	mockRepo "mdm/internal/mocks/repository"
	mockSvc "mdm/internal/mocks/service"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountMocks struct {
	resellerRepo *mockRepo.MockResellerRepository
	licenseRepo  *mockRepo.MockLicenseRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	tokenSvc     *mockSvc.MockTokenService
	hasher       *mockSvc.MockPasswordHasher
}

func newAccountService(t *testing.T, cfg *config.Config) (usecase.AccountUsecase, *accountMocks) {
	t.Helper()

	m := &accountMocks{
		resellerRepo: mockRepo.NewMockResellerRepository(t),
		licenseRepo:  mockRepo.NewMockLicenseRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		tokenSvc:     mockSvc.NewMockTokenService(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
	}
	if cfg == nil {
		cfg = newTestConfig()
	}

	svc := NewAccountService(AccountServiceParams{
		ResellerRepo:   m.resellerRepo,
		LicenseRepo:    m.licenseRepo,
		DeviceRepo:     m.deviceRepo,
		TokenService:   m.tokenSvc,
		PasswordHasher: m.hasher,
		Config:         cfg,
	})

	return svc, m
}

func adminConfig() *config.Config {
	cfg := newTestConfig()
	cfg.Admin = &config.AdminConfig{
		Email:        "admin@example.com",
		PasswordHash: "$2a$12$admin-hash",
	}

	return cfg
}

func TestAccountService_Login_Admin(t *testing.T) {
	svc, m := newAccountService(t, adminConfig())

	m.hasher.EXPECT().Check("secret", "$2a$12$admin-hash").Return(true)
	m.tokenSvc.EXPECT().
		GenerateTokens(uuid.Nil, entity.RoleAdmin).
		Return("access-token", "refresh-token", nil)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "Admin@Example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, entity.RoleAdmin, output.Role)
	assert.Nil(t, output.Reseller)
}

func TestAccountService_Login_AdminWrongPassword(t *testing.T) {
	svc, m := newAccountService(t, adminConfig())

	m.hasher.EXPECT().Check("wrong", "$2a$12$admin-hash").Return(false)

	output, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_Reseller(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()
	reseller := &entity.Reseller{
		ID:           uuid.New(),
		BusinessName: "Movil Norte",
		Email:        "ventas@movilnorte.com",
		PasswordHash: "$2a$12$reseller-hash",
		IsActive:     true,
	}

	m.resellerRepo.EXPECT().FindByEmail(ctx, "ventas@movilnorte.com").Return(reseller, nil)
	m.hasher.EXPECT().Check("secret", "$2a$12$reseller-hash").Return(true)
	m.tokenSvc.EXPECT().
		GenerateTokens(reseller.ID, entity.RoleReseller).
		Return("access-token", "refresh-token", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "  Ventas@MovilNorte.com ",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleReseller, output.Role)
	assert.Equal(t, reseller, output.Reseller)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()

	// Indistinguishable from a wrong password.
	m.resellerRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrResellerNotFound)

	output, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_DeactivatedReseller(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()
	reseller := &entity.Reseller{
		ID:       uuid.New(),
		Email:    "ventas@movilnorte.com",
		IsActive: false,
	}

	m.resellerRepo.EXPECT().FindByEmail(ctx, "ventas@movilnorte.com").Return(reseller, nil)

	output, err := svc.Login(ctx, usecase.LoginInput{Email: "ventas@movilnorte.com", Password: "secret"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_CreateReseller(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()
	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}

	m.hasher.EXPECT().Hash("secret123").Return("$2a$12$new-hash", nil)
	m.resellerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reseller")).
		RunAndReturn(func(_ context.Context, reseller *entity.Reseller) error {
			assert.Equal(t, "ventas@movilnorte.com", reseller.Email)
			assert.Equal(t, "$2a$12$new-hash", reseller.PasswordHash)
			assert.True(t, reseller.IsActive)

			return nil
		})

	reseller, err := svc.CreateReseller(ctx, admin, usecase.CreateResellerInput{
		BusinessName: "Movil Norte",
		Email:        "Ventas@MovilNorte.com",
		Password:     "secret123",
		ContactPhone: "+34 600 000 000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Movil Norte", reseller.BusinessName)
	assert.Equal(t, "ventas@movilnorte.com", reseller.Email)
}

func TestAccountService_CreateReseller_NonAdminForbidden(t *testing.T) {
	svc, _ := newAccountService(t, nil)

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	reseller, err := svc.CreateReseller(context.Background(), actor, usecase.CreateResellerInput{
		BusinessName: "Movil Norte",
		Email:        "ventas@movilnorte.com",
		Password:     "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, reseller)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_CreateReseller_DuplicateEmail(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()
	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}

	m.hasher.EXPECT().Hash("secret123").Return("$2a$12$new-hash", nil)
	m.resellerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reseller")).
		Return(repository.ErrDuplicateReseller)

	reseller, err := svc.CreateReseller(ctx, admin, usecase.CreateResellerInput{
		BusinessName: "Movil Norte",
		Email:        "ventas@movilnorte.com",
		Password:     "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, reseller)
	assert.ErrorIs(t, err, domainerrors.ErrResellerAlreadyExists)
}

func TestAccountService_ResellerDashboard(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	licenses := &entity.LicenseSummary{Total: 10, Available: 4, InUse: 5, Bound: 1}
	devices := &repository.DeviceSummary{Active: 4, Locked: 1, Released: 1}

	m.licenseRepo.EXPECT().Summary(ctx, actor.ID).Return(licenses, nil)
	m.deviceRepo.EXPECT().Summary(ctx, actor.ID).Return(devices, nil)

	dashboard, err := svc.ResellerDashboard(ctx, actor, actor.ID)
	require.NoError(t, err)
	assert.Equal(t, licenses, dashboard.Licenses)
	assert.Equal(t, devices, dashboard.Devices)
}

func TestAccountService_ResellerDashboard_CrossTenantForbidden(t *testing.T) {
	svc, _ := newAccountService(t, nil)

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	dashboard, err := svc.ResellerDashboard(context.Background(), actor, uuid.New())
	require.Error(t, err)
	assert.Nil(t, dashboard)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_AdminDashboard(t *testing.T) {
	svc, m := newAccountService(t, nil)

	ctx := context.Background()
	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}

	m.resellerRepo.EXPECT().Count(ctx).Return(int64(12), nil)
	m.licenseRepo.EXPECT().Count(ctx).Return(int64(480), nil)
	m.deviceRepo.EXPECT().Count(ctx).Return(int64(350), nil)

	dashboard, err := svc.AdminDashboard(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(12), dashboard.Resellers)
	assert.Equal(t, int64(480), dashboard.Licenses)
	assert.Equal(t, int64(350), dashboard.Devices)
}
