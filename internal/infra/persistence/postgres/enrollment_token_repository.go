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

// enrollmentTokenRepository implements the repository.EnrollmentTokenRepository interface.
type enrollmentTokenRepository struct {
	db *gorm.DB
}

// NewEnrollmentTokenRepository is the constructor for enrollmentTokenRepository.
func NewEnrollmentTokenRepository(db *gorm.DB) repository.EnrollmentTokenRepository {
	return &enrollmentTokenRepository{
		db: db,
	}
}

// Create persists a newly issued token.
func (repo *enrollmentTokenRepository) Create(ctx context.Context, token *entity.EnrollmentToken) error {
	tokenM := fromEnrollmentTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("enrollment token collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid license or reseller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create enrollment token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a token by its opaque value.
func (repo *enrollmentTokenRepository) FindByToken(ctx context.Context, token string) (*entity.EnrollmentToken, error) {
	var tokenM model.EnrollmentTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment token")
	}

	return toEnrollmentTokenDomain(&tokenM), nil
}

// Consume transitions one token from PENDING to CONSUMED.
func (repo *enrollmentTokenRepository) Consume(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, entity.EnrollmentTokenStateConsumed)
}

// MarkExpired transitions one token from PENDING to EXPIRED.
func (repo *enrollmentTokenRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return repo.transition(ctx, id, entity.EnrollmentTokenStateExpired)
}

// ListExpiredPending retrieves up to limit PENDING tokens whose TTL elapsed
// before now, oldest first.
func (repo *enrollmentTokenRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]*entity.EnrollmentToken, error) {
	var tokenModels []*model.EnrollmentTokenModel

	if err := repo.db.WithContext(ctx).
		Where("state = ? AND expires_at < ?", string(entity.EnrollmentTokenStatePending), now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expired pending tokens")
	}

	tokens := make([]*entity.EnrollmentToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toEnrollmentTokenDomain(tokenM))
	}

	return tokens, nil
}

func (repo *enrollmentTokenRepository) transition(ctx context.Context, id uuid.UUID, to entity.EnrollmentTokenState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentTokenModel{}).
		Where("id = ? AND state = ?", id, string(entity.EnrollmentTokenStatePending)).
		Update("state", string(to))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to transition enrollment token")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.EnrollmentTokenModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check enrollment token existence")
		}

		if count == 0 {
			return repository.ErrTokenNotFound
		}

		return repository.ErrTokenStateConflict
	}

	return nil
}

// --- Mapper Functions ---

// toEnrollmentTokenDomain converts a GORM EnrollmentTokenModel to a domain EnrollmentToken entity.
func toEnrollmentTokenDomain(data *model.EnrollmentTokenModel) *entity.EnrollmentToken {
	if data == nil {
		return nil
	}

	return &entity.EnrollmentToken{
		ID:         data.ID,
		Token:      data.Token,
		ResellerID: data.ResellerID,
		LicenseID:  data.LicenseID,
		State:      entity.EnrollmentTokenState(data.State),
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromEnrollmentTokenDomain converts a domain EnrollmentToken entity to a GORM EnrollmentTokenModel.
func fromEnrollmentTokenDomain(data *entity.EnrollmentToken) *model.EnrollmentTokenModel {
	if data == nil {
		return nil
	}

	return &model.EnrollmentTokenModel{
		ID:         data.ID,
		Token:      data.Token,
		ResellerID: data.ResellerID,
		LicenseID:  data.LicenseID,
		State:      string(data.State),
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}
