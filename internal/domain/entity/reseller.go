package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the kind of console session.
type Role string

const (
	// RoleAdmin is the super-administrator operating across all tenants.
	RoleAdmin Role = "admin"
	// RoleReseller is a tenant staff member scoped to their own licenses and devices.
	RoleReseller Role = "reseller"
)

// Reseller is a tenant of the console: it owns licenses, devices and policies.
type Reseller struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"` // Login identity, unique.
	PasswordHash string    `json:"-"`     // Bcrypt hash, never serialized.
	ContactPhone string    `json:"contact_phone"`
	IsActive     bool      `json:"is_active"` // Inactive resellers cannot log in.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
