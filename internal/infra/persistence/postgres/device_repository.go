// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device record in ACTIVE state.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// The partial unique index on imei rejects a second managed record.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid license or reseller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByID retrieves a device record by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindManagedByIMEI retrieves the ACTIVE or LOCKED record for a hardware identifier.
func (repo *deviceRepository) FindManagedByIMEI(ctx context.Context, imei string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("imei = ? AND state <> ?", imei, string(entity.DeviceStateReleased)).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find managed device by IMEI")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListByReseller retrieves all device records of a reseller, newest first.
func (repo *deviceRepository) ListByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ?", resellerID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices by reseller")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// ListAll retrieves device records across all resellers, newest first.
func (repo *deviceRepository) ListAll(ctx context.Context) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Lock transitions ACTIVE to LOCKED and records the lock screen message.
func (repo *deviceRepository) Lock(ctx context.Context, id uuid.UUID, message string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND state = ?", id, string(entity.DeviceStateActive)).
		Updates(map[string]any{
			"state":        string(entity.DeviceStateLocked),
			"lock_message": message,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to lock device")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// Unlock transitions LOCKED to ACTIVE and clears the lock screen message.
func (repo *deviceRepository) Unlock(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND state = ?", id, string(entity.DeviceStateLocked)).
		Updates(map[string]any{
			"state":        string(entity.DeviceStateActive),
			"lock_message": "",
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unlock device")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// Release transitions ACTIVE or LOCKED to the terminal RELEASED state.
func (repo *deviceRepository) Release(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND state IN ?", id, []string{
			string(entity.DeviceStateActive),
			string(entity.DeviceStateLocked),
		}).
		Update("state", string(entity.DeviceStateReleased))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release device")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// UpdateClientInfo mutates the customer metadata regardless of state.
func (repo *deviceRepository) UpdateClientInfo(ctx context.Context, id uuid.UUID, info *entity.ClientInfo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"client_name":  info.Name,
			"client_phone": info.Phone,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update client info")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// AssignPolicy records the device's policy pointer.
func (repo *deviceRepository) AssignPolicy(ctx context.Context, id uuid.UUID, policyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("policy_id", policyID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign policy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// ReassignPolicy moves every device pointing at one policy to another.
func (repo *deviceRepository) ReassignPolicy(ctx context.Context, fromPolicyID, toPolicyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("policy_id = ?", fromPolicyID).
		Update("policy_id", toPolicyID).Error; err != nil {
		return errors.Wrap(err, "failed to reassign policy")
	}

	return nil
}

// UpdateTelemetry overwrites the last-known snapshot when the report is not
// older than the stored one. The timestamp guard lives in the WHERE clause so
// concurrent out-of-order reports resolve inside the database.
func (repo *deviceRepository) UpdateTelemetry(ctx context.Context, id uuid.UUID, battery int, lat, lon, accuracy float64, reportedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND (last_seen_at IS NULL OR last_seen_at <= ?)", id, reportedAt).
		Updates(map[string]any{
			"battery":      battery,
			"latitude":     lat,
			"longitude":    lon,
			"accuracy":     accuracy,
			"last_seen_at": reportedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update telemetry")
	}

	return result.RowsAffected > 0, nil
}

// UpdateManagementStatus overwrites the management channel status when the
// report is not older than the stored one.
func (repo *deviceRepository) UpdateManagementStatus(ctx context.Context, id uuid.UUID, state string, reportedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND (last_report_at IS NULL OR last_report_at <= ?)", id, reportedAt).
		Updates(map[string]any{
			"management_state": state,
			"last_report_at":   reportedAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update management status")
	}

	return result.RowsAffected > 0, nil
}

// AppendLocation adds one entry to the device's location history.
func (repo *deviceRepository) AppendLocation(ctx context.Context, point *entity.LocationPoint) error {
	pointM := &model.DeviceLocationModel{
		ID:         point.ID,
		DeviceID:   point.DeviceID,
		Latitude:   point.Latitude,
		Longitude:  point.Longitude,
		Accuracy:   point.Accuracy,
		RecordedAt: point.RecordedAt,
	}

	if err := repo.db.WithContext(ctx).Create(pointM).Error; err != nil {
		return errors.Wrap(err, "failed to append location")
	}

	point.ID = pointM.ID

	return nil
}

// PruneLocations deletes history entries recorded before the cutoff.
func (repo *deviceRepository) PruneLocations(ctx context.Context, deviceID uuid.UUID, before time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND recorded_at < ?", deviceID, before).
		Delete(&model.DeviceLocationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to prune locations")
	}

	return nil
}

// ListLocations retrieves history entries recorded since the cutoff, newest first.
func (repo *deviceRepository) ListLocations(ctx context.Context, deviceID uuid.UUID, since time.Time) ([]*entity.LocationPoint, error) {
	var pointModels []*model.DeviceLocationModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND recorded_at >= ?", deviceID, since).
		Order("recorded_at DESC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	points := make([]*entity.LocationPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, &entity.LocationPoint{
			ID:         pointM.ID,
			DeviceID:   pointM.DeviceID,
			Latitude:   pointM.Latitude,
			Longitude:  pointM.Longitude,
			Accuracy:   pointM.Accuracy,
			RecordedAt: pointM.RecordedAt,
		})
	}

	return points, nil
}

// Summary returns the reseller's device counts by state.
func (repo *deviceRepository) Summary(ctx context.Context, resellerID uuid.UUID) (*repository.DeviceSummary, error) {
	var summary repository.DeviceSummary

	query := `
		SELECT
			COUNT(*) FILTER (WHERE state = ?) AS active,
			COUNT(*) FILTER (WHERE state = ?) AS locked,
			COUNT(*) FILTER (WHERE state = ?) AS released
		FROM devices
		WHERE reseller_id = ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query,
			string(entity.DeviceStateActive),
			string(entity.DeviceStateLocked),
			string(entity.DeviceStateReleased),
			resellerID,
		).
		Scan(&summary).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize devices")
	}

	return &summary, nil
}

// Count returns the total number of device records across all resellers.
func (repo *deviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return count, nil
}

// conflictOrNotFound distinguishes a missing row from a row in the wrong
// state after a guarded transition matched nothing.
func (repo *deviceRepository) conflictOrNotFound(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check device existence")
	}

	if count == 0 {
		return repository.ErrDeviceNotFound
	}

	return repository.ErrDeviceStateConflict
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:              data.ID,
		ResellerID:      data.ResellerID,
		LicenseID:       data.LicenseID,
		IMEI:            data.IMEI,
		State:           entity.DeviceState(data.State),
		ClientName:      data.ClientName,
		ClientPhone:     data.ClientPhone,
		LockMessage:     data.LockMessage,
		PolicyID:        data.PolicyID,
		Battery:         data.Battery,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Accuracy:        data.Accuracy,
		LastSeenAt:      data.LastSeenAt,
		ManagementState: data.ManagementState,
		LastReportAt:    data.LastReportAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:              data.ID,
		ResellerID:      data.ResellerID,
		LicenseID:       data.LicenseID,
		IMEI:            data.IMEI,
		State:           string(data.State),
		ClientName:      data.ClientName,
		ClientPhone:     data.ClientPhone,
		LockMessage:     data.LockMessage,
		PolicyID:        data.PolicyID,
		Battery:         data.Battery,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Accuracy:        data.Accuracy,
		LastSeenAt:      data.LastSeenAt,
		ManagementState: data.ManagementState,
		LastReportAt:    data.LastReportAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
