package impl

import (
	"context"
	"testing"
	"time"

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

type lifecycleMocks struct {
	deviceRepo  *mockRepo.MockDeviceRepository
	licenseRepo *mockRepo.MockLicenseRepository
	codeRepo    *mockRepo.MockUnlockCodeRepository
	policyRepo  *mockRepo.MockPolicyRepository
	codeGen     *mockSvc.MockCodeGenerator
	channel     *mockSvc.MockManagementChannel
}

func newLifecycleService(t *testing.T, txManager repository.TransactionManager) (usecase.DeviceLifecycleUsecase, *lifecycleMocks) {
	t.Helper()

	m := &lifecycleMocks{
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		licenseRepo: mockRepo.NewMockLicenseRepository(t),
		codeRepo:    mockRepo.NewMockUnlockCodeRepository(t),
		policyRepo:  mockRepo.NewMockPolicyRepository(t),
		codeGen:     mockSvc.NewMockCodeGenerator(t),
		channel:     mockSvc.NewMockManagementChannel(t),
	}
	if txManager == nil {
		txManager = mockRepo.NewMockTransactionManager(t)
	}

	svc := NewLifecycleService(LifecycleServiceParams{
		TxManager:     txManager,
		DeviceRepo:    m.deviceRepo,
		LicenseRepo:   m.licenseRepo,
		CodeRepo:      m.codeRepo,
		PolicyRepo:    m.policyRepo,
		CodeGenerator: m.codeGen,
		MgmtChannel:   m.channel,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return svc, m
}

func activeDevice(resellerID uuid.UUID) *entity.Device {
	return &entity.Device{
		ID:         uuid.New(),
		ResellerID: resellerID,
		LicenseID:  uuid.New(),
		IMEI:       "356938035643809",
		State:      entity.DeviceStateActive,
	}
}

func TestLifecycleService_LockDevice(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)

	mockDeviceRepoTx := mockRepo.NewMockDeviceRepository(t)
	mockCodeRepoTx := mockRepo.NewMockUnlockCodeRepository(t)
	factory := newRepoFactory(t, nil, mockDeviceRepoTx, nil, mockCodeRepoTx, nil)
	svc, m := newLifecycleService(t, newTxManager(t, factory))

	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	m.codeGen.EXPECT().UnlockCode().Return("A1B2C3D4", nil)

	mockDeviceRepoTx.EXPECT().Lock(ctx, device.ID, "Cuota vencida").Return(nil)
	mockCodeRepoTx.EXPECT().SupersedeIssued(ctx, device.ID).Return(nil)
	mockCodeRepoTx.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UnlockCode")).
		RunAndReturn(func(_ context.Context, code *entity.UnlockCode) error {
			assert.Equal(t, entity.UnlockCodeStateIssued, code.State)
			assert.Equal(t, device.ID, code.DeviceID)

			return nil
		})

	m.channel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentLock, intent.Intent)
			assert.Equal(t, "Cuota vencida", intent.Message)

			return nil
		})

	output, err := svc.LockDevice(ctx, actor, usecase.LockDeviceInput{DeviceID: device.ID, Message: "Cuota vencida"})
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3D4", output.Code)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), output.ExpiresAt, time.Minute)
}

func TestLifecycleService_LockDevice_ReleasedDevice(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)
	device.State = entity.DeviceStateReleased

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	output, err := svc.LockDevice(ctx, actor, usecase.LockDeviceInput{DeviceID: device.ID})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceReleased)
}

func TestLifecycleService_LockDevice_CrossTenantForbidden(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(uuid.New())

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	output, err := svc.LockDevice(ctx, actor, usecase.LockDeviceInput{DeviceID: device.ID})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLifecycleService_StaffUnlockCode_ReturnsOutstanding(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)
	device.State = entity.DeviceStateLocked

	outstanding := &entity.UnlockCode{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		Code:      "A1B2C3D4",
		State:     entity.UnlockCodeStateIssued,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	m.codeRepo.EXPECT().FindIssuedByDevice(ctx, device.ID).Return(outstanding, nil)

	output, err := svc.StaffUnlockCode(ctx, actor, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3D4", output.Code)
	assert.Equal(t, outstanding.ExpiresAt, output.ExpiresAt)
}

func TestLifecycleService_StaffUnlockCode_ReissuesExpired(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)
	device.State = entity.DeviceStateLocked

	expired := &entity.UnlockCode{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		Code:      "A1B2C3D4",
		State:     entity.UnlockCodeStateIssued,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	mockCodeRepoTx := mockRepo.NewMockUnlockCodeRepository(t)
	factory := newRepoFactory(t, nil, nil, nil, mockCodeRepoTx, nil)
	svc, m := newLifecycleService(t, newTxManager(t, factory))

	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	m.codeRepo.EXPECT().FindIssuedByDevice(ctx, device.ID).Return(expired, nil)
	m.codeGen.EXPECT().UnlockCode().Return("E5F6G7H8", nil)

	mockCodeRepoTx.EXPECT().SupersedeIssued(ctx, device.ID).Return(nil)
	mockCodeRepoTx.EXPECT().Create(ctx, mock.AnythingOfType("*entity.UnlockCode")).Return(nil)

	output, err := svc.StaffUnlockCode(ctx, actor, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "E5F6G7H8", output.Code)
}

func TestLifecycleService_StaffUnlockCode_NotLocked(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	output, err := svc.StaffUnlockCode(ctx, actor, device.ID)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDeviceState)
}

func TestLifecycleService_DeviceUnlock_CaseInsensitiveMatch(t *testing.T) {
	ctx := context.Background()
	device := activeDevice(uuid.New())
	device.State = entity.DeviceStateLocked
	device.LockMessage = "Cuota vencida"

	outstanding := &entity.UnlockCode{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		Code:      "A1B2C3D4",
		State:     entity.UnlockCodeStateIssued,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	mockDeviceRepoTx := mockRepo.NewMockDeviceRepository(t)
	mockCodeRepoTx := mockRepo.NewMockUnlockCodeRepository(t)
	factory := newRepoFactory(t, nil, mockDeviceRepoTx, nil, mockCodeRepoTx, nil)
	svc, m := newLifecycleService(t, newTxManager(t, factory))

	m.deviceRepo.EXPECT().FindManagedByIMEI(ctx, device.IMEI).Return(device, nil)
	m.codeRepo.EXPECT().FindIssuedByDevice(ctx, device.ID).Return(outstanding, nil)

	mockCodeRepoTx.EXPECT().Consume(ctx, outstanding.ID).Return(nil)
	mockDeviceRepoTx.EXPECT().Unlock(ctx, device.ID).Return(nil)

	unlocked, err := svc.DeviceUnlock(ctx, usecase.DeviceUnlockInput{IMEI: device.IMEI, Code: "a1b2c3d4"})
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStateActive, unlocked.State)
	assert.Empty(t, unlocked.LockMessage)
}

func TestLifecycleService_DeviceUnlock_WrongCode(t *testing.T) {
	ctx := context.Background()
	device := activeDevice(uuid.New())
	device.State = entity.DeviceStateLocked

	outstanding := &entity.UnlockCode{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		Code:      "A1B2C3D4",
		State:     entity.UnlockCodeStateIssued,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindManagedByIMEI(ctx, device.IMEI).Return(device, nil)
	m.codeRepo.EXPECT().FindIssuedByDevice(ctx, device.ID).Return(outstanding, nil)

	unlocked, err := svc.DeviceUnlock(ctx, usecase.DeviceUnlockInput{IMEI: device.IMEI, Code: "WRONG000"})
	require.Error(t, err)
	assert.Nil(t, unlocked)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUnlockCode)
}

func TestLifecycleService_DeviceUnlock_ExpiredCodeBeatsExactMatch(t *testing.T) {
	ctx := context.Background()
	device := activeDevice(uuid.New())
	device.State = entity.DeviceStateLocked

	outstanding := &entity.UnlockCode{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		Code:      "A1B2C3D4",
		State:     entity.UnlockCodeStateIssued,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindManagedByIMEI(ctx, device.IMEI).Return(device, nil)
	m.codeRepo.EXPECT().FindIssuedByDevice(ctx, device.ID).Return(outstanding, nil)

	unlocked, err := svc.DeviceUnlock(ctx, usecase.DeviceUnlockInput{IMEI: device.IMEI, Code: "A1B2C3D4"})
	require.Error(t, err)
	assert.Nil(t, unlocked)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUnlockCode)
}

func TestLifecycleService_StaffUnlock(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)
	device.State = entity.DeviceStateLocked

	mockDeviceRepoTx := mockRepo.NewMockDeviceRepository(t)
	mockCodeRepoTx := mockRepo.NewMockUnlockCodeRepository(t)
	factory := newRepoFactory(t, nil, mockDeviceRepoTx, nil, mockCodeRepoTx, nil)
	svc, m := newLifecycleService(t, newTxManager(t, factory))

	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	mockDeviceRepoTx.EXPECT().Unlock(ctx, device.ID).Return(nil)
	mockCodeRepoTx.EXPECT().SupersedeIssued(ctx, device.ID).Return(nil)

	m.channel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentUnlock, intent.Intent)

			return nil
		})

	err := svc.StaffUnlock(ctx, actor, device.ID)
	require.NoError(t, err)
}

func TestLifecycleService_ReleaseDevice_BindsLicense(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)

	mockDeviceRepoTx := mockRepo.NewMockDeviceRepository(t)
	mockLicenseRepoTx := mockRepo.NewMockLicenseRepository(t)
	mockCodeRepoTx := mockRepo.NewMockUnlockCodeRepository(t)
	factory := newRepoFactory(t, mockLicenseRepoTx, mockDeviceRepoTx, nil, mockCodeRepoTx, nil)
	svc, m := newLifecycleService(t, newTxManager(t, factory))

	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	mockDeviceRepoTx.EXPECT().Release(ctx, device.ID).Return(nil)
	mockCodeRepoTx.EXPECT().SupersedeIssued(ctx, device.ID).Return(nil)
	mockLicenseRepoTx.EXPECT().BindToDevice(ctx, device.LicenseID, device.IMEI).Return(nil)

	m.channel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentRelease, intent.Intent)

			return nil
		})

	err := svc.ReleaseDevice(ctx, actor, device.ID)
	require.NoError(t, err)
}

func TestLifecycleService_GetDeviceDetail(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)
	policyID := uuid.New()
	device.PolicyID = &policyID

	license := &entity.License{ID: device.LicenseID, ResellerID: actor.ID, State: entity.LicenseStateInUse}
	policy := &entity.Policy{ID: policyID, ResellerID: actor.ID, Name: "Kiosk"}

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	m.licenseRepo.EXPECT().FindByID(ctx, device.LicenseID).Return(license, nil)
	m.policyRepo.EXPECT().FindByID(ctx, policyID).Return(policy, nil)

	detail, err := svc.GetDeviceDetail(ctx, actor, device.ID)
	require.NoError(t, err)
	assert.Equal(t, device, detail.Device)
	assert.Equal(t, license, detail.License)
	assert.Equal(t, policy, detail.Policy)
}

func TestLifecycleService_ListAllDevices_AdminOnly(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	svc, _ := newLifecycleService(t, nil)

	devices, err := svc.ListAllDevices(ctx, actor)
	require.Error(t, err)
	assert.Nil(t, devices)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLifecycleService_RebootDevice_PublishesIntent(t *testing.T) {
	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}
	device := activeDevice(uuid.New())

	svc, m := newLifecycleService(t, nil)
	m.deviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	m.channel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentReboot, intent.Intent)
			assert.Equal(t, device.IMEI, intent.IMEI)

			return nil
		})

	err := svc.RebootDevice(ctx, actor, device.ID)
	require.NoError(t, err)
}
