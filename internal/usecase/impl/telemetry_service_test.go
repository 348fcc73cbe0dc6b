package impl

import (
	"context"
	"testing"
	"time"

	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	mockRepo "mdm/internal/mocks/repository"
	"mdm/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTelemetryService(t *testing.T) (usecase.TelemetryUsecase, *mockRepo.MockDeviceRepository) {
	t.Helper()

	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewTelemetryService(TelemetryServiceParams{
		DeviceRepo: mockDeviceRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return svc, mockDeviceRepo
}

func TestTelemetryService_ReportTelemetry_Applied(t *testing.T) {
	svc, mockDeviceRepo := newTelemetryService(t)

	ctx := context.Background()
	device := activeDevice(uuid.New())
	reportedAt := time.Now().Add(-time.Minute)

	mockDeviceRepo.EXPECT().FindManagedByIMEI(ctx, device.IMEI).Return(device, nil)
	mockDeviceRepo.EXPECT().
		UpdateTelemetry(ctx, device.ID, 87, 40.4168, -3.7038, 12.5, reportedAt).
		Return(true, nil)

	// An accepted report lands in the bounded location history.
	mockDeviceRepo.EXPECT().
		AppendLocation(ctx, mock.AnythingOfType("*entity.LocationPoint")).
		RunAndReturn(func(_ context.Context, point *entity.LocationPoint) error {
			assert.Equal(t, device.ID, point.DeviceID)
			assert.Equal(t, reportedAt, point.RecordedAt)

			return nil
		})
	mockDeviceRepo.EXPECT().
		PruneLocations(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	applied, err := svc.ReportTelemetry(ctx, usecase.TelemetryReportInput{
		IMEI:       device.IMEI,
		Battery:    87,
		Latitude:   40.4168,
		Longitude:  -3.7038,
		Accuracy:   12.5,
		ReportedAt: reportedAt,
	})
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestTelemetryService_ReportTelemetry_StaleReportDropped(t *testing.T) {
	svc, mockDeviceRepo := newTelemetryService(t)

	ctx := context.Background()
	device := activeDevice(uuid.New())
	reportedAt := time.Now().Add(-time.Hour)

	mockDeviceRepo.EXPECT().FindManagedByIMEI(ctx, device.IMEI).Return(device, nil)
	mockDeviceRepo.EXPECT().
		UpdateTelemetry(ctx, device.ID, 50, 40.4168, -3.7038, 8.0, reportedAt).
		Return(false, nil)

	// A stale report is acknowledged but never reaches the history.
	applied, err := svc.ReportTelemetry(ctx, usecase.TelemetryReportInput{
		IMEI:       device.IMEI,
		Battery:    50,
		Latitude:   40.4168,
		Longitude:  -3.7038,
		Accuracy:   8.0,
		ReportedAt: reportedAt,
	})
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestTelemetryService_ReportTelemetry_BatteryOutOfRange(t *testing.T) {
	svc, _ := newTelemetryService(t)

	applied, err := svc.ReportTelemetry(context.Background(), usecase.TelemetryReportInput{
		IMEI:       "356938035643809",
		Battery:    150,
		ReportedAt: time.Now(),
	})
	require.Error(t, err)
	assert.False(t, applied)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTelemetryService_ReportTelemetry_MissingTimestamp(t *testing.T) {
	svc, _ := newTelemetryService(t)

	applied, err := svc.ReportTelemetry(context.Background(), usecase.TelemetryReportInput{
		IMEI:    "356938035643809",
		Battery: 80,
	})
	require.Error(t, err)
	assert.False(t, applied)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTelemetryService_ReportStatus_Applied(t *testing.T) {
	svc, mockDeviceRepo := newTelemetryService(t)

	ctx := context.Background()
	device := activeDevice(uuid.New())
	reportedAt := time.Now()

	mockDeviceRepo.EXPECT().FindManagedByIMEI(ctx, device.IMEI).Return(device, nil)
	mockDeviceRepo.EXPECT().
		UpdateManagementStatus(ctx, device.ID, "PROVISIONED", reportedAt).
		Return(true, nil)

	applied, err := svc.ReportStatus(ctx, usecase.StatusReportInput{
		IMEI:       device.IMEI,
		State:      "PROVISIONED",
		ReportedAt: reportedAt,
	})
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestTelemetryService_GetFrequentPlaces_ClustersAndRanks(t *testing.T) {
	svc, mockDeviceRepo := newTelemetryService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(actor.ID)

	now := time.Now()
	points := []*entity.LocationPoint{
		// Three visits inside the same grid cell, around the shop.
		{DeviceID: device.ID, Latitude: 40.41680, Longitude: -3.70380, RecordedAt: now.Add(-3 * time.Hour)},
		{DeviceID: device.ID, Latitude: 40.41684, Longitude: -3.70376, RecordedAt: now.Add(-2 * time.Hour)},
		{DeviceID: device.ID, Latitude: 40.41688, Longitude: -3.70372, RecordedAt: now.Add(-time.Hour)},
		// One visit far away.
		{DeviceID: device.ID, Latitude: 41.38790, Longitude: 2.16990, RecordedAt: now.Add(-30 * time.Minute)},
	}

	mockDeviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
	mockDeviceRepo.EXPECT().
		ListLocations(ctx, device.ID, mock.AnythingOfType("time.Time")).
		Return(points, nil)

	places, err := svc.GetFrequentPlaces(ctx, actor, device.ID)
	require.NoError(t, err)
	require.Len(t, places, 2)

	// The busiest cell ranks first, centered on the average of its points.
	assert.Equal(t, int64(3), places[0].Visits)
	assert.InDelta(t, 40.41684, places[0].Latitude, 0.0001)
	assert.InDelta(t, -3.70376, places[0].Longitude, 0.0001)
	assert.Equal(t, now.Add(-time.Hour), places[0].LastVisit)

	assert.Equal(t, int64(1), places[1].Visits)
	assert.InDelta(t, 41.38790, places[1].Latitude, 0.0001)
}

func TestTelemetryService_GetFrequentPlaces_CrossTenantForbidden(t *testing.T) {
	svc, mockDeviceRepo := newTelemetryService(t)

	ctx := context.Background()
	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleReseller}
	device := activeDevice(uuid.New())

	mockDeviceRepo.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

	places, err := svc.GetFrequentPlaces(ctx, actor, device.ID)
	require.Error(t, err)
	assert.Nil(t, places)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
