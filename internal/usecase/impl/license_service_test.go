package impl

import (
	"context"
	"fmt"
	"testing"

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

func newLicenseService(t *testing.T) (usecase.LicenseUsecase, *mockRepo.MockLicenseRepository, *mockRepo.MockResellerRepository, *mockSvc.MockCodeGenerator) {
	t.Helper()

	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockResellerRepo := mockRepo.NewMockResellerRepository(t)
	mockGen := mockSvc.NewMockCodeGenerator(t)
	svc := NewLicenseService(LicenseServiceParams{
		LicenseRepo:   mockLicenseRepo,
		ResellerRepo:  mockResellerRepo,
		CodeGenerator: mockGen,
	})

	return svc, mockLicenseRepo, mockResellerRepo, mockGen
}

func TestLicenseService_GrantLicenses(t *testing.T) {
	svc, mockLicenseRepo, mockResellerRepo, mockGen := newLicenseService(t)

	ctx := context.Background()
	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}
	resellerID := uuid.New()

	mockResellerRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(&entity.Reseller{ID: resellerID, IsActive: true}, nil)

	generated := 0
	mockGen.EXPECT().
		LicenseKey().
		RunAndReturn(func() (string, error) {
			generated++

			return fmt.Sprintf("LIC-%04d", generated), nil
		})

	mockLicenseRepo.EXPECT().
		CreateBatch(ctx, mock.AnythingOfType("[]*entity.License")).
		RunAndReturn(func(_ context.Context, licenses []*entity.License) error {
			require.Len(t, licenses, 3)
			for _, license := range licenses {
				assert.Equal(t, resellerID, license.ResellerID)
				assert.Equal(t, entity.LicenseStateAvailable, license.State)
			}

			return nil
		})

	output, err := svc.GrantLicenses(ctx, admin, usecase.GrantLicensesInput{ResellerID: resellerID, Count: 3})
	require.NoError(t, err)
	require.Len(t, output.Licenses, 3)
	assert.Equal(t, "LIC-0001", output.Licenses[0].Key)
	assert.Equal(t, "LIC-0003", output.Licenses[2].Key)
}

func TestLicenseService_GrantLicenses_NonAdminForbidden(t *testing.T) {
	svc, _, _, _ := newLicenseService(t)

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	output, err := svc.GrantLicenses(context.Background(), actor, usecase.GrantLicensesInput{
		ResellerID: actor.ID,
		Count:      5,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLicenseService_GrantLicenses_CountOutOfRange(t *testing.T) {
	svc, _, _, _ := newLicenseService(t)

	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}

	for _, count := range []int{0, -1, maxGrantBatch + 1} {
		output, err := svc.GrantLicenses(context.Background(), admin, usecase.GrantLicensesInput{
			ResellerID: uuid.New(),
			Count:      count,
		})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestLicenseService_GrantLicenses_UnknownReseller(t *testing.T) {
	svc, _, mockResellerRepo, _ := newLicenseService(t)

	ctx := context.Background()
	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}
	resellerID := uuid.New()

	mockResellerRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(nil, repository.ErrResellerNotFound)

	output, err := svc.GrantLicenses(ctx, admin, usecase.GrantLicensesInput{ResellerID: resellerID, Count: 5})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrResellerNotFound)
}

func TestLicenseService_ListLicenses_CrossTenantForbidden(t *testing.T) {
	svc, _, _, _ := newLicenseService(t)

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	licenses, err := svc.ListLicenses(context.Background(), actor, uuid.New())
	require.Error(t, err)
	assert.Nil(t, licenses)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLicenseService_GetSummary(t *testing.T) {
	svc, mockLicenseRepo, _, _ := newLicenseService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	summary := &entity.LicenseSummary{Total: 20, Available: 8, InUse: 10, Bound: 2}

	mockLicenseRepo.EXPECT().Summary(ctx, actor.ID).Return(summary, nil)

	output, err := svc.GetSummary(ctx, actor, actor.ID)
	require.NoError(t, err)
	assert.Equal(t, summary, output)
}
