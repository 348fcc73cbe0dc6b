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

// unlockCodeRepository implements the repository.UnlockCodeRepository interface.
type unlockCodeRepository struct {
	db *gorm.DB
}

// NewUnlockCodeRepository is the constructor for unlockCodeRepository.
func NewUnlockCodeRepository(db *gorm.DB) repository.UnlockCodeRepository {
	return &unlockCodeRepository{
		db: db,
	}
}

// Create persists a newly issued code.
func (repo *unlockCodeRepository) Create(ctx context.Context, code *entity.UnlockCode) error {
	codeM := fromUnlockCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required code information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create unlock code")
	}

	// Update the entity with generated values
	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindIssuedByDevice retrieves the single ISSUED code for a device.
func (repo *unlockCodeRepository) FindIssuedByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.UnlockCode, error) {
	var codeM model.UnlockCodeModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND state = ?", deviceID, string(entity.UnlockCodeStateIssued)).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnlockCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find issued unlock code")
	}

	return toUnlockCodeDomain(&codeM), nil
}

// SupersedeIssued marks any ISSUED code of the device as EXPIRED.
// Matching zero rows is fine: the device simply had no outstanding code.
func (repo *unlockCodeRepository) SupersedeIssued(ctx context.Context, deviceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.UnlockCodeModel{}).
		Where("device_id = ? AND state = ?", deviceID, string(entity.UnlockCodeStateIssued)).
		Update("state", string(entity.UnlockCodeStateExpired)).Error; err != nil {
		return errors.Wrap(err, "failed to supersede issued unlock codes")
	}

	return nil
}

// Consume transitions one code from ISSUED to CONSUMED.
func (repo *unlockCodeRepository) Consume(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, entity.UnlockCodeStateConsumed)
}

// MarkExpired transitions one code from ISSUED to EXPIRED.
func (repo *unlockCodeRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, entity.UnlockCodeStateExpired)
}

func (repo *unlockCodeRepository) transition(ctx context.Context, id uuid.UUID, to entity.UnlockCodeState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UnlockCodeModel{}).
		Where("id = ? AND state = ?", id, string(entity.UnlockCodeStateIssued)).
		Update("state", string(to))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition unlock code")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UnlockCodeModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check unlock code existence")
		}

		if count == 0 {
			return repository.ErrUnlockCodeNotFound
		}

		return repository.ErrUnlockCodeStateConflict
	}

	return nil
}

// --- Mapper Functions ---

// toUnlockCodeDomain converts a GORM UnlockCodeModel to a domain UnlockCode entity.
func toUnlockCodeDomain(data *model.UnlockCodeModel) *entity.UnlockCode {
	if data == nil {
		return nil
	}

	return &entity.UnlockCode{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Code:      data.Code,
		State:     entity.UnlockCodeState(data.State),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromUnlockCodeDomain converts a domain UnlockCode entity to a GORM UnlockCodeModel.
func fromUnlockCodeDomain(data *entity.UnlockCode) *model.UnlockCodeModel {
	if data == nil {
		return nil
	}

	return &model.UnlockCodeModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Code:      data.Code,
		State:     string(data.State),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
