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

// resellerRepository implements the repository.ResellerRepository interface.
type resellerRepository struct {
	db *gorm.DB
}

// NewResellerRepository is the constructor for resellerRepository.
func NewResellerRepository(db *gorm.DB) repository.ResellerRepository {
	return &resellerRepository{
		db: db,
	}
}

// Create persists a new reseller tenant.
func (repo *resellerRepository) Create(ctx context.Context, reseller *entity.Reseller) error {
	resellerM := fromResellerDomain(reseller)

	if err := repo.db.WithContext(ctx).Create(resellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReseller
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reseller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reseller")
	}

	// Update the entity with generated values
	reseller.ID = resellerM.ID
	reseller.CreatedAt = resellerM.CreatedAt
	reseller.UpdatedAt = resellerM.UpdatedAt

	return nil
}

// FindByID retrieves a reseller by its unique ID.
func (repo *resellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reseller, error) {
	var resellerM model.ResellerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&resellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller by ID")
	}

	return toResellerDomain(&resellerM), nil
}

// FindByEmail retrieves a reseller by its login email.
func (repo *resellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Reseller, error) {
	var resellerM model.ResellerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&resellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller by email")
	}

	return toResellerDomain(&resellerM), nil
}

// List retrieves all resellers ordered by business name.
func (repo *resellerRepository) List(ctx context.Context) ([]*entity.Reseller, error) {
	var resellerModels []*model.ResellerModel

	if err := repo.db.WithContext(ctx).
		Order("business_name ASC").
		Find(&resellerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list resellers")
	}

	resellers := make([]*entity.Reseller, 0, len(resellerModels))
	for _, resellerM := range resellerModels {
		resellers = append(resellers, toResellerDomain(resellerM))
	}

	return resellers, nil
}

// Count returns the total number of resellers.
func (repo *resellerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ResellerModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count resellers")
	}

	return count, nil
}

// --- Mapper Functions ---

// toResellerDomain converts a GORM ResellerModel to a domain Reseller entity.
func toResellerDomain(data *model.ResellerModel) *entity.Reseller {
	if data == nil {
		return nil
	}

	return &entity.Reseller{
		ID:           data.ID,
		BusinessName: data.BusinessName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		ContactPhone: data.ContactPhone,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromResellerDomain converts a domain Reseller entity to a GORM ResellerModel.
func fromResellerDomain(data *entity.Reseller) *model.ResellerModel {
	if data == nil {
		return nil
	}

	return &model.ResellerModel{
		ID:           data.ID,
		BusinessName: data.BusinessName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		ContactPhone: data.ContactPhone,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
