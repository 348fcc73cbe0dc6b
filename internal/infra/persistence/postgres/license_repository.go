// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// licenseRepository implements the repository.LicenseRepository interface.
type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository is the constructor for licenseRepository.
func NewLicenseRepository(db *gorm.DB) repository.LicenseRepository {
	return &licenseRepository{
		db: db,
	}
}

// CreateBatch persists newly granted licenses.
func (repo *licenseRepository) CreateBatch(ctx context.Context, licenses []*entity.License) error {
	if len(licenses) == 0 {
		return nil
	}

	licenseModels := make([]*model.LicenseModel, 0, len(licenses))
	for _, license := range licenses {
		licenseModels = append(licenseModels, fromLicenseDomain(license))
	}

	if err := repo.db.WithContext(ctx).Create(&licenseModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("license key collision")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required license information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create licenses")
	}

	// Update the entities with generated values
	for i, licenseM := range licenseModels {
		licenses[i].ID = licenseM.ID
		licenses[i].CreatedAt = licenseM.CreatedAt
		licenses[i].UpdatedAt = licenseM.UpdatedAt
	}

	return nil
}

// FindByID retrieves a license by its unique ID.
func (repo *licenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find license by ID")
	}

	return toLicenseDomain(&licenseM), nil
}

// FindByKey retrieves a license by its activation key.
func (repo *licenseRepository) FindByKey(ctx context.Context, key string) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find license by key")
	}

	return toLicenseDomain(&licenseM), nil
}

// ListByReseller retrieves all licenses of a reseller, newest first.
func (repo *licenseRepository) ListByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.License, error) {
	var licenseModels []*model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ?", resellerID).
		Order("created_at DESC").
		Find(&licenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list licenses by reseller")
	}

	licenses := make([]*entity.License, 0, len(licenseModels))
	for _, licenseM := range licenseModels {
		licenses = append(licenses, toLicenseDomain(licenseM))
	}

	return licenses, nil
}

// FindBoundByIMEI retrieves the reseller's BOUND license for a hardware identifier.
func (repo *licenseRepository) FindBoundByIMEI(ctx context.Context, resellerID uuid.UUID, imei string) (*entity.License, error) {
	var licenseM model.LicenseModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ? AND state = ? AND bound_imei = ?", resellerID, string(entity.LicenseStateBound), imei).
		First(&licenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLicenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find bound license by IMEI")
	}

	return toLicenseDomain(&licenseM), nil
}

// ClaimAvailable atomically claims one AVAILABLE license of the reseller.
// The claim is a single UPDATE over a SKIP LOCKED subquery, so two concurrent
// claims can never pick the same row: each claimer either locks a distinct
// AVAILABLE row or finds none left.
func (repo *licenseRepository) ClaimAvailable(ctx context.Context, resellerID uuid.UUID) (*entity.License, error) {
	query := `
		UPDATE licenses
		SET state = ?, updated_at = NOW()
		WHERE id = (
			SELECT id
			FROM licenses
			WHERE reseller_id = ?
			  AND state = ?
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *
	`

	var licenseM model.LicenseModel

	result := repo.db.WithContext(ctx).
		Raw(query, string(entity.LicenseStateInUse), resellerID, string(entity.LicenseStateAvailable)).
		Scan(&licenseM)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to claim available license")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrNoAvailableLicense
	}

	return toLicenseDomain(&licenseM), nil
}

// AssignIMEI records the enrolling hardware on a reserved license.
func (repo *licenseRepository) AssignIMEI(ctx context.Context, id uuid.UUID, imei string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Where("id = ? AND state = ? AND bound_imei = ''", id, string(entity.LicenseStateInUse)).
		Update("bound_imei", imei)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign hardware to license")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// ReleaseReservation returns a reserved license to AVAILABLE.
func (repo *licenseRepository) ReleaseReservation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Where("id = ? AND state = ? AND bound_imei = ''", id, string(entity.LicenseStateInUse)).
		Update("state", string(entity.LicenseStateAvailable))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release license reservation")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// BindToDevice transitions IN_USE to BOUND, recording the hardware identifier.
func (repo *licenseRepository) BindToDevice(ctx context.Context, id uuid.UUID, imei string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Where("id = ? AND state = ?", id, string(entity.LicenseStateInUse)).
		Updates(map[string]any{
			"state":      string(entity.LicenseStateBound),
			"bound_imei": imei,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to bind license to device")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// Reactivate transitions BOUND back to IN_USE for the same hardware only.
func (repo *licenseRepository) Reactivate(ctx context.Context, id uuid.UUID, imei string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Where("id = ? AND state = ? AND bound_imei = ?", id, string(entity.LicenseStateBound), imei).
		Update("state", string(entity.LicenseStateInUse))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reactivate license")
	}

	if result.RowsAffected == 0 {
		return repo.conflictOrNotFound(ctx, id)
	}

	return nil
}

// Summary returns the reseller's license counts by state.
func (repo *licenseRepository) Summary(ctx context.Context, resellerID uuid.UUID) (*entity.LicenseSummary, error) {
	var summary entity.LicenseSummary

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE state = ?) AS available,
			COUNT(*) FILTER (WHERE state = ?) AS in_use,
			COUNT(*) FILTER (WHERE state = ?) AS bound
		FROM licenses
		WHERE reseller_id = ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query,
			string(entity.LicenseStateAvailable),
			string(entity.LicenseStateInUse),
			string(entity.LicenseStateBound),
			resellerID,
		).
		Scan(&summary).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize licenses")
	}

	return &summary, nil
}

// Count returns the total number of licenses across all resellers.
func (repo *licenseRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count licenses")
	}

	return count, nil
}

// conflictOrNotFound distinguishes a missing row from a row in the wrong
// state after a guarded transition matched nothing.
func (repo *licenseRepository) conflictOrNotFound(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LicenseModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check license existence")
	}

	if count == 0 {
		return repository.ErrLicenseNotFound
	}

	return repository.ErrLicenseStateConflict
}

// --- Mapper Functions ---

// toLicenseDomain converts a GORM LicenseModel to a domain License entity.
func toLicenseDomain(data *model.LicenseModel) *entity.License {
	if data == nil {
		return nil
	}

	return &entity.License{
		ID:         data.ID,
		Key:        data.Key,
		ResellerID: data.ResellerID,
		State:      entity.LicenseState(data.State),
		BoundIMEI:  data.BoundIMEI,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromLicenseDomain converts a domain License entity to a GORM LicenseModel.
func fromLicenseDomain(data *entity.License) *model.LicenseModel {
	if data == nil {
		return nil
	}

	return &model.LicenseModel{
		ID:         data.ID,
		Key:        data.Key,
		ResellerID: data.ResellerID,
		State:      string(data.State),
		BoundIMEI:  data.BoundIMEI,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
