package impl

import (
	"context"
	"testing"

	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/domain/service"
	mockRepo "mdm/internal/mocks/repository"
	mockSvc "mdm/internal/mocks/service"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPolicyService_CreatePolicy_FirstBecomesDefault(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockPolicyRepoTx := mockRepo.NewMockPolicyRepository(t)
	factory := newRepoFactory(t, nil, nil, nil, nil, mockPolicyRepoTx)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   newTxManager(t, factory),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	mockPolicyRepo.EXPECT().ListByReseller(ctx, actor.ID).Return([]*entity.Policy{}, nil)

	// The first policy of a tenant becomes the default even when unrequested.
	mockPolicyRepoTx.EXPECT().ClearDefault(ctx, actor.ID).Return(nil)
	mockPolicyRepoTx.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Policy")).Return(nil)

	policy, err := svc.CreatePolicy(ctx, actor, usecase.CreatePolicyInput{Name: "Kiosk", IsDefault: false})
	require.NoError(t, err)
	assert.True(t, policy.IsDefault)
	assert.Equal(t, 1, policy.Version)
	assert.Equal(t, actor.ID, policy.ResellerID)
}

func TestPolicyService_CreatePolicy_AdminForbidden(t *testing.T) {
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockRepo.NewMockPolicyRepository(t),
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	actor := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}

	policy, err := svc.CreatePolicy(context.Background(), actor, usecase.CreatePolicyInput{Name: "Kiosk"})
	require.Error(t, err)
	assert.Nil(t, policy)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPolicyService_CreatePolicy_DuplicateName(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockPolicyRepoTx := mockRepo.NewMockPolicyRepository(t)
	factory := newRepoFactory(t, nil, nil, nil, nil, mockPolicyRepoTx)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   newTxManager(t, factory),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	existing := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Kiosk", IsDefault: true}

	mockPolicyRepo.EXPECT().ListByReseller(ctx, actor.ID).Return([]*entity.Policy{existing}, nil)
	mockPolicyRepoTx.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Policy")).
		Return(repository.ErrDuplicatePolicy)

	policy, err := svc.CreatePolicy(ctx, actor, usecase.CreatePolicyInput{Name: "Kiosk"})
	require.Error(t, err)
	assert.Nil(t, policy)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePolicyName)
}

func TestPolicyService_UpdatePolicy_CannotUnmarkDefault(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Kiosk", IsDefault: true}

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)

	updated, err := svc.UpdatePolicy(ctx, actor, usecase.UpdatePolicyInput{
		PolicyID:  policy.ID,
		Name:      "Kiosk",
		IsDefault: false,
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPolicyService_UpdatePolicy_PromoteToDefault(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockChannel := mockSvc.NewMockManagementChannel(t)
	mockPolicyRepoTx := mockRepo.NewMockPolicyRepository(t)
	factory := newRepoFactory(t, nil, nil, nil, nil, mockPolicyRepoTx)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   newTxManager(t, factory),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockDeviceRepo,
		MgmtChannel: mockChannel,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Kiosk", Version: 2}

	assigned := activeDevice(actor.ID)
	assigned.PolicyID = &policy.ID
	unassigned := activeDevice(actor.ID)

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)
	mockPolicyRepoTx.EXPECT().ClearDefault(ctx, actor.ID).Return(nil)
	mockPolicyRepoTx.EXPECT().Update(ctx, policy).Return(nil)

	// Only devices assigned to the policy receive the apply intent.
	mockDeviceRepo.EXPECT().
		ListByReseller(ctx, actor.ID).
		Return([]*entity.Device{assigned, unassigned}, nil)
	mockChannel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentApplyPolicy, intent.Intent)
			assert.Equal(t, assigned.ID.String(), intent.DeviceID)

			return nil
		}).
		Once()

	updated, err := svc.UpdatePolicy(ctx, actor, usecase.UpdatePolicyInput{
		PolicyID:  policy.ID,
		Name:      "Kiosk",
		IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
}

func TestPolicyService_DuplicatePolicy(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	source := &entity.Policy{
		ID:         uuid.New(),
		ResellerID: actor.ID,
		Name:       "Kiosk",
		Version:    7,
		IsDefault:  true,
		Config:     entity.PolicyConfig{CameraDisabled: true},
	}

	mockPolicyRepo.EXPECT().FindByID(ctx, source.ID).Return(source, nil)
	mockPolicyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Policy")).Return(nil)

	copied, err := svc.DuplicatePolicy(ctx, actor, source.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kiosk (Copia)", copied.Name)
	assert.Equal(t, 1, copied.Version)
	assert.False(t, copied.IsDefault)
	assert.Equal(t, source.Config, copied.Config)
}

func TestPolicyService_DeletePolicy_DefaultRejected(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Kiosk", IsDefault: true}

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)

	err := svc.DeletePolicy(ctx, actor, policy.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCannotDeleteDefault)
}

func TestPolicyService_DeletePolicy_ReassignsDevicesToDefault(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockChannel := mockSvc.NewMockManagementChannel(t)
	mockPolicyRepoTx := mockRepo.NewMockPolicyRepository(t)
	mockDeviceRepoTx := mockRepo.NewMockDeviceRepository(t)
	factory := newRepoFactory(t, nil, mockDeviceRepoTx, nil, nil, mockPolicyRepoTx)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   newTxManager(t, factory),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockDeviceRepo,
		MgmtChannel: mockChannel,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Old"}
	fallback := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Base", Version: 4, IsDefault: true}

	inherited := activeDevice(actor.ID)
	inherited.PolicyID = &fallback.ID

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)
	mockPolicyRepo.EXPECT().FindDefault(ctx, actor.ID).Return(fallback, nil)

	mockDeviceRepoTx.EXPECT().ReassignPolicy(ctx, policy.ID, fallback.ID).Return(nil)
	mockPolicyRepoTx.EXPECT().Delete(ctx, policy.ID).Return(nil)

	// Inherited devices receive the fallback configuration.
	mockDeviceRepo.EXPECT().
		ListByReseller(ctx, actor.ID).
		Return([]*entity.Device{inherited}, nil)
	mockChannel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, "Base@4", intent.PolicyRef)

			return nil
		})

	err := svc.DeletePolicy(ctx, actor, policy.ID)
	require.NoError(t, err)
}

func TestPolicyService_DeletePolicy_NoDefaultFallback(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockRepo.NewMockDeviceRepository(t),
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Old"}

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)
	mockPolicyRepo.EXPECT().FindDefault(ctx, actor.ID).Return(nil, repository.ErrPolicyNotFound)

	err := svc.DeletePolicy(ctx, actor, policy.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoDefaultPolicy)
}

func TestPolicyService_AssignPolicy(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockChannel := mockSvc.NewMockManagementChannel(t)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockDeviceRepo,
		MgmtChannel: mockChannel,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: actor.ID, Name: "Kiosk", Version: 2}
	device := activeDevice(actor.ID)

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)
	mockDeviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	mockDeviceRepo.EXPECT().AssignPolicy(ctx, device.ID, policy.ID).Return(nil)

	mockChannel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentApplyPolicy, intent.Intent)
			assert.Equal(t, "Kiosk@2", intent.PolicyRef)

			return nil
		})

	err := svc.AssignPolicy(ctx, actor, device.ID, policy.ID)
	require.NoError(t, err)
}

func TestPolicyService_AssignPolicy_CrossTenantForbidden(t *testing.T) {
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewPolicyService(PolicyServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PolicyRepo:  mockPolicyRepo,
		DeviceRepo:  mockDeviceRepo,
		MgmtChannel: mockSvc.NewMockManagementChannel(t),
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	admin := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}
	policy := &entity.Policy{ID: uuid.New(), ResellerID: uuid.New(), Name: "Kiosk"}
	device := activeDevice(uuid.New())

	mockPolicyRepo.EXPECT().FindByID(ctx, policy.ID).Return(policy, nil)
	mockDeviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	// Even the administrator cannot attach a policy across tenants.
	err := svc.AssignPolicy(ctx, admin, device.ID, policy.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
