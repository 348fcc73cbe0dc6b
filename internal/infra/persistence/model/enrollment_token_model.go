package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentTokenModel mirrors the 'enrollment_tokens' table.
type EnrollmentTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token      string    `gorm:"type:varchar(64);unique;not null"`
	ResellerID uuid.UUID `gorm:"type:uuid;not null;index"`
	LicenseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	State      string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentTokenModel) TableName() string {
	return "enrollment_tokens"
}
