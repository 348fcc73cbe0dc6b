package model

import (
	"time"

	"github.com/google/uuid"
)

// LicenseModel mirrors the 'licenses' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Rows are never deleted; the allocation history stays auditable through state alone.
type LicenseModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key        string    `gorm:"type:varchar(64);unique;not null"`
	ResellerID uuid.UUID `gorm:"type:uuid;not null;index:idx_licenses_reseller_state"`
	State      string    `gorm:"type:varchar(20);not null;default:'AVAILABLE';index:idx_licenses_reseller_state"`
	BoundIMEI  string    `gorm:"type:varchar(20);not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LicenseModel) TableName() string {
	return "licenses"
}
