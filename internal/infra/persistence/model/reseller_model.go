package model

import (
	"time"

	"github.com/google/uuid"
)

// ResellerModel mirrors the 'resellers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ResellerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessName string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	ContactPhone string    `gorm:"type:varchar(30)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResellerModel) TableName() string {
	return "resellers"
}
