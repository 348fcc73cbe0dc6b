// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"mdm/internal/domain/entity"
	domainerrors "mdm/internal/domain/errors"
	"mdm/internal/domain/repository"
	"mdm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// policyRepository implements the repository.PolicyRepository interface.
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository is the constructor for policyRepository.
func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepository{
		db: db,
	}
}

// Create persists a new policy.
func (repo *policyRepository) Create(ctx context.Context, policy *entity.Policy) error {
	policyM, err := fromPolicyDomain(policy)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(policyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePolicy
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required policy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create policy")
	}

	// Update the entity with generated values
	policy.ID = policyM.ID
	policy.CreatedAt = policyM.CreatedAt
	policy.UpdatedAt = policyM.UpdatedAt

	return nil
}

// FindByID retrieves a policy by its unique ID.
func (repo *policyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Policy, error) {
	var policyM model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&policyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find policy by ID")
	}

	return toPolicyDomain(&policyM)
}

// FindDefault retrieves the tenant's default policy.
func (repo *policyRepository) FindDefault(ctx context.Context, resellerID uuid.UUID) (*entity.Policy, error) {
	var policyM model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ? AND is_default = ?", resellerID, true).
		First(&policyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPolicyNotFound
		}

		return nil, errors.Wrap(err, "failed to find default policy")
	}

	return toPolicyDomain(&policyM)
}

// ListByReseller retrieves all policies of a tenant ordered by name.
func (repo *policyRepository) ListByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Policy, error) {
	var policyModels []*model.PolicyModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ?", resellerID).
		Order("name ASC").
		Find(&policyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list policies by reseller")
	}

	policies := make([]*entity.Policy, 0, len(policyModels))
	for _, policyM := range policyModels {
		policy, err := toPolicyDomain(policyM)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}

	return policies, nil
}

// Update persists name, description, config and default marking, and bumps the version.
func (repo *policyRepository) Update(ctx context.Context, policy *entity.Policy) error {
	configJSON, err := json.Marshal(policy.Config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal policy config")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PolicyModel{}).
		Where("id = ?", policy.ID).
		Updates(map[string]any{
			"name":        policy.Name,
			"description": policy.Description,
			"is_default":  policy.IsDefault,
			"config":      datatypes.JSON(configJSON),
			"version":     gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePolicy
		}

		return errors.Wrap(result.Error, "failed to update policy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPolicyNotFound
	}

	policy.Version++

	return nil
}

// ClearDefault unsets the default marking on the tenant's current default.
func (repo *policyRepository) ClearDefault(ctx context.Context, resellerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PolicyModel{}).
		Where("reseller_id = ? AND is_default = ?", resellerID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default policy")
	}

	return nil
}

// Delete removes a policy. Devices must be reassigned beforehand.
func (repo *policyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PolicyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete policy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPolicyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPolicyDomain converts a GORM PolicyModel to a domain Policy entity.
func toPolicyDomain(data *model.PolicyModel) (*entity.Policy, error) {
	if data == nil {
		return nil, nil
	}

	var config entity.PolicyConfig
	if len(data.Config) > 0 {
		if err := json.Unmarshal(data.Config, &config); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal policy config")
		}
	}

	return &entity.Policy{
		ID:          data.ID,
		ResellerID:  data.ResellerID,
		Name:        data.Name,
		Description: data.Description,
		Version:     data.Version,
		IsDefault:   data.IsDefault,
		Config:      config,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// fromPolicyDomain converts a domain Policy entity to a GORM PolicyModel.
func fromPolicyDomain(data *entity.Policy) (*model.PolicyModel, error) {
	if data == nil {
		return nil, nil
	}

	configJSON, err := json.Marshal(data.Config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal policy config")
	}

	return &model.PolicyModel{
		ID:          data.ID,
		ResellerID:  data.ResellerID,
		Name:        data.Name,
		Description: data.Description,
		Version:     data.Version,
		IsDefault:   data.IsDefault,
		Config:      datatypes.JSON(configJSON),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}
