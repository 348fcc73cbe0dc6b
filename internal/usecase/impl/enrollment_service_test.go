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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentService_IssueToken(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	mockGen := mockSvc.NewMockCodeGenerator(t)
	mockQR := mockSvc.NewMockQRCodeService(t)
	factory := newRepoFactory(t, mockLicenseRepo, nil, mockTokenRepo, nil, nil)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockGen,
		QRCodeService: mockQR,
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	license := &entity.License{ID: uuid.New(), ResellerID: actor.ID, State: entity.LicenseStateInUse}

	mockGen.EXPECT().EnrollmentToken().Return("enroll-token-123", nil)

	mockLicenseRepo.EXPECT().
		ClaimAvailable(ctx, actor.ID).
		Return(license, nil)

	mockTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EnrollmentToken")).
		RunAndReturn(func(_ context.Context, token *entity.EnrollmentToken) error {
			assert.Equal(t, license.ID, token.LicenseID)
			assert.Equal(t, entity.EnrollmentTokenStatePending, token.State)

			return nil
		})

	mockQR.EXPECT().
		GenerateEnrollmentQR("enroll-token-123").
		Return(&service.EnrollmentQR{Payload: `{"token":"enroll-token-123"}`, PNG: []byte{0x89, 0x50}}, nil)

	output, err := svc.IssueToken(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "enroll-token-123", output.Token)
	assert.Equal(t, `{"token":"enroll-token-123"}`, output.QRPayload)
	assert.NotEmpty(t, output.QRImage)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), output.ExpiresAt, time.Minute)
}

func TestEnrollmentService_IssueToken_AdminForbidden(t *testing.T) {
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		LicenseRepo:   mockRepo.NewMockLicenseRepository(t),
		TokenRepo:     mockRepo.NewMockEnrollmentTokenRepository(t),
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	actor := usecase.Actor{ID: uuid.Nil, Role: entity.RoleAdmin}

	output, err := svc.IssueToken(context.Background(), actor)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEnrollmentService_IssueToken_NoLicenseAvailable(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockGen := mockSvc.NewMockCodeGenerator(t)
	factory := newRepoFactory(t, mockLicenseRepo, nil, nil, nil, nil)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockRepo.NewMockEnrollmentTokenRepository(t),
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockGen,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}

	mockGen.EXPECT().EnrollmentToken().Return("enroll-token-123", nil)

	mockLicenseRepo.EXPECT().
		ClaimAvailable(ctx, actor.ID).
		Return(nil, repository.ErrNoAvailableLicense)

	output, err := svc.IssueToken(ctx, actor)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoLicenseAvailable)
}

func TestEnrollmentService_Enroll_NewDevice(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	mockChannel := mockSvc.NewMockManagementChannel(t)
	factory := newRepoFactory(t, mockLicenseRepo, mockDeviceRepo, mockTokenRepo, nil, mockPolicyRepo)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockPolicyRepo,
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockChannel,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	resellerID := uuid.New()
	token := &entity.EnrollmentToken{
		ID:         uuid.New(),
		Token:      "enroll-token-123",
		ResellerID: resellerID,
		LicenseID:  uuid.New(),
		State:      entity.EnrollmentTokenStatePending,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	defaultPolicy := &entity.Policy{
		ID:         uuid.New(),
		ResellerID: resellerID,
		Name:       "Kiosk",
		Version:    3,
		IsDefault:  true,
	}

	mockTokenRepo.EXPECT().FindByToken(ctx, "enroll-token-123").Return(token, nil)
	mockTokenRepo.EXPECT().Consume(ctx, token.ID).Return(nil)

	mockLicenseRepo.EXPECT().
		FindBoundByIMEI(ctx, resellerID, "356938035643809").
		Return(nil, repository.ErrLicenseNotFound)
	mockLicenseRepo.EXPECT().
		AssignIMEI(ctx, token.LicenseID, "356938035643809").
		Return(nil)

	mockPolicyRepo.EXPECT().FindDefault(ctx, resellerID).Return(defaultPolicy, nil)

	mockDeviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	mockChannel.EXPECT().
		PublishIntent(ctx, mock.AnythingOfType("*service.ManagementIntent")).
		RunAndReturn(func(_ context.Context, intent *service.ManagementIntent) error {
			assert.Equal(t, service.IntentApplyPolicy, intent.Intent)
			assert.Equal(t, "Kiosk@3", intent.PolicyRef)

			return nil
		})

	output, err := svc.Enroll(ctx, usecase.EnrollInput{
		Token:      "enroll-token-123",
		IMEI:       "356938035643809",
		ClientName: "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t, resellerID, output.Device.ResellerID)
	assert.Equal(t, token.LicenseID, output.Device.LicenseID)
	assert.Equal(t, "356938035643809", output.Device.IMEI)
	assert.Equal(t, entity.DeviceStateActive, output.Device.State)
	require.NotNil(t, output.Device.PolicyID)
	assert.Equal(t, defaultPolicy.ID, *output.Device.PolicyID)
	assert.Equal(t, defaultPolicy, output.Policy)
}

func TestEnrollmentService_Enroll_ReactivatesBoundLicense(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	mockPolicyRepo := mockRepo.NewMockPolicyRepository(t)
	factory := newRepoFactory(t, mockLicenseRepo, mockDeviceRepo, mockTokenRepo, nil, mockPolicyRepo)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockPolicyRepo,
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	resellerID := uuid.New()
	token := &entity.EnrollmentToken{
		ID:         uuid.New(),
		Token:      "enroll-token-123",
		ResellerID: resellerID,
		LicenseID:  uuid.New(),
		State:      entity.EnrollmentTokenStatePending,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	bound := &entity.License{
		ID:         uuid.New(),
		ResellerID: resellerID,
		State:      entity.LicenseStateBound,
		BoundIMEI:  "356938035643809",
	}

	mockTokenRepo.EXPECT().FindByToken(ctx, "enroll-token-123").Return(token, nil)
	mockTokenRepo.EXPECT().Consume(ctx, token.ID).Return(nil)

	// The handset was released before: its BOUND license comes back and the
	// token's reservation returns to the pool.
	mockLicenseRepo.EXPECT().
		FindBoundByIMEI(ctx, resellerID, "356938035643809").
		Return(bound, nil)
	mockLicenseRepo.EXPECT().Reactivate(ctx, bound.ID, "356938035643809").Return(nil)
	mockLicenseRepo.EXPECT().ReleaseReservation(ctx, token.LicenseID).Return(nil)

	mockPolicyRepo.EXPECT().FindDefault(ctx, resellerID).Return(nil, repository.ErrPolicyNotFound)

	mockDeviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	output, err := svc.Enroll(ctx, usecase.EnrollInput{Token: "enroll-token-123", IMEI: "356938035643809"})
	require.NoError(t, err)
	assert.Equal(t, bound.ID, output.Device.LicenseID)
	assert.Nil(t, output.Device.PolicyID)
	assert.Nil(t, output.Policy)
}

func TestEnrollmentService_Enroll_ReactivateConflict(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	factory := newRepoFactory(t, mockLicenseRepo, nil, mockTokenRepo, nil, nil)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	resellerID := uuid.New()
	token := &entity.EnrollmentToken{
		ID:         uuid.New(),
		Token:      "enroll-token-123",
		ResellerID: resellerID,
		LicenseID:  uuid.New(),
		State:      entity.EnrollmentTokenStatePending,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	bound := &entity.License{
		ID:         uuid.New(),
		ResellerID: resellerID,
		State:      entity.LicenseStateBound,
		BoundIMEI:  "356938035643809",
	}

	mockTokenRepo.EXPECT().FindByToken(ctx, "enroll-token-123").Return(token, nil)
	mockTokenRepo.EXPECT().Consume(ctx, token.ID).Return(nil)

	mockLicenseRepo.EXPECT().
		FindBoundByIMEI(ctx, resellerID, "356938035643809").
		Return(bound, nil)
	mockLicenseRepo.EXPECT().
		Reactivate(ctx, bound.ID, "356938035643809").
		Return(repository.ErrLicenseStateConflict)

	output, err := svc.Enroll(ctx, usecase.EnrollInput{Token: "enroll-token-123", IMEI: "356938035643809"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceMismatch)
}

func TestEnrollmentService_Enroll_ConsumedToken(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		LicenseRepo:   mockRepo.NewMockLicenseRepository(t),
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	token := &entity.EnrollmentToken{
		ID:        uuid.New(),
		Token:     "enroll-token-123",
		State:     entity.EnrollmentTokenStateConsumed,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mockTokenRepo.EXPECT().FindByToken(ctx, "enroll-token-123").Return(token, nil)

	output, err := svc.Enroll(ctx, usecase.EnrollInput{Token: "enroll-token-123", IMEI: "356938035643809"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenAlreadyConsumed)
}

func TestEnrollmentService_Enroll_ExpiresStaleTokenOnTouch(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	factory := newRepoFactory(t, mockLicenseRepo, nil, mockTokenRepo, nil, nil)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	token := &entity.EnrollmentToken{
		ID:        uuid.New(),
		Token:     "enroll-token-123",
		LicenseID: uuid.New(),
		State:     entity.EnrollmentTokenStatePending,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	mockTokenRepo.EXPECT().FindByToken(ctx, "enroll-token-123").Return(token, nil)

	// Lazy expiry beats the sweeper: the reservation goes back to the pool.
	mockTokenRepo.EXPECT().MarkExpired(ctx, token.ID).Return(nil)
	mockLicenseRepo.EXPECT().ReleaseReservation(ctx, token.LicenseID).Return(nil)

	output, err := svc.Enroll(ctx, usecase.EnrollInput{Token: "enroll-token-123", IMEI: "356938035643809"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestEnrollmentService_Enroll_ConcurrentConsumeLoses(t *testing.T) {
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	factory := newRepoFactory(t, nil, nil, mockTokenRepo, nil, nil)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockRepo.NewMockLicenseRepository(t),
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	token := &entity.EnrollmentToken{
		ID:        uuid.New(),
		Token:     "enroll-token-123",
		State:     entity.EnrollmentTokenStatePending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	mockTokenRepo.EXPECT().FindByToken(ctx, "enroll-token-123").Return(token, nil)
	mockTokenRepo.EXPECT().Consume(ctx, token.ID).Return(repository.ErrTokenStateConflict)

	output, err := svc.Enroll(ctx, usecase.EnrollInput{Token: "enroll-token-123", IMEI: "356938035643809"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenAlreadyConsumed)
}

func TestEnrollmentService_Enroll_MissingFields(t *testing.T) {
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     mockRepo.NewMockTransactionManager(t),
		LicenseRepo:   mockRepo.NewMockLicenseRepository(t),
		TokenRepo:     mockRepo.NewMockEnrollmentTokenRepository(t),
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	output, err := svc.Enroll(context.Background(), usecase.EnrollInput{Token: "enroll-token-123"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEnrollmentService_ExpireStaleTokens_KeepsSweepingOnConflict(t *testing.T) {
	mockLicenseRepo := mockRepo.NewMockLicenseRepository(t)
	mockTokenRepo := mockRepo.NewMockEnrollmentTokenRepository(t)
	factory := newRepoFactory(t, mockLicenseRepo, nil, mockTokenRepo, nil, nil)
	svc := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:     newTxManager(t, factory),
		LicenseRepo:   mockLicenseRepo,
		TokenRepo:     mockTokenRepo,
		PolicyRepo:    mockRepo.NewMockPolicyRepository(t),
		CodeGenerator: mockSvc.NewMockCodeGenerator(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		MgmtChannel:   mockSvc.NewMockManagementChannel(t),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	first := &entity.EnrollmentToken{ID: uuid.New(), LicenseID: uuid.New(), State: entity.EnrollmentTokenStatePending}
	second := &entity.EnrollmentToken{ID: uuid.New(), LicenseID: uuid.New(), State: entity.EnrollmentTokenStatePending}

	mockTokenRepo.EXPECT().
		ListExpiredPending(ctx, mock.AnythingOfType("time.Time"), 100).
		Return([]*entity.EnrollmentToken{first, second}, nil)

	mockTokenRepo.EXPECT().MarkExpired(ctx, first.ID).Return(nil)
	mockLicenseRepo.EXPECT().ReleaseReservation(ctx, first.LicenseID).Return(nil)

	// A lazy touch expired the second token already; the sweep moves on.
	mockTokenRepo.EXPECT().
		MarkExpired(ctx, second.ID).
		Return(errors.Wrap(repository.ErrTokenStateConflict, "failed to mark token expired"))

	swept, err := svc.ExpireStaleTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}
