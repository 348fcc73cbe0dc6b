package repository

import (
	"context"
	"time"

	"mdm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for enrollment token persistence.
var (
	// ErrTokenNotFound is returned when an enrollment token is not found.
	ErrTokenNotFound = errors.New("enrollment token not found")
	// ErrTokenStateConflict is returned when a guarded transition matches no
	// row, meaning the token is no longer PENDING.
	ErrTokenStateConflict = errors.New("enrollment token state conflict")
)

// EnrollmentTokenRepository defines the interface for enrollment-token database operations.
type EnrollmentTokenRepository interface {
	// Create persists a newly issued token.
	Create(ctx context.Context, token *entity.EnrollmentToken) error

	// FindByToken retrieves a token by its opaque value.
	FindByToken(ctx context.Context, token string) (*entity.EnrollmentToken, error)

	// Consume transitions one token from PENDING to CONSUMED.
	Consume(ctx context.Context, id uuid.UUID) error

	// MarkExpired transitions one token from PENDING to EXPIRED.
	MarkExpired(ctx context.Context, id uuid.UUID) error

	// ListExpiredPending retrieves up to limit PENDING tokens whose TTL
	// elapsed before now, oldest first. Used by the expiry sweeper.
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]*entity.EnrollmentToken, error)
}
