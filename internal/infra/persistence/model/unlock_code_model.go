package model

import (
	"time"

	"github.com/google/uuid"
)

// UnlockCodeModel mirrors the 'unlock_codes' table. At most one ISSUED row per
// device is kept by superseding outstanding rows in the issuing transaction.
type UnlockCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(20);not null"`
	State     string    `gorm:"type:varchar(20);not null;default:'ISSUED'"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnlockCodeModel) TableName() string {
	return "unlock_codes"
}
