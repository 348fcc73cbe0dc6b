// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import (
	"time"

	"mdm/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating console
// session tokens. Every token carries the tenant identity and role that
// scope all operations behind the auth boundary.
type TokenService interface {
	// GenerateTokens creates an access and refresh token pair for a console
	// session. subject is the reseller ID, or uuid.Nil for the super-admin.
	GenerateTokens(subject uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
