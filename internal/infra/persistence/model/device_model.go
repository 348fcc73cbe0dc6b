package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel mirrors the 'devices' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// A partial unique index (created in migrations) enforces at most one
// non-RELEASED row per IMEI:
//
//	CREATE UNIQUE INDEX uidx_devices_managed_imei ON devices (imei) WHERE state <> 'RELEASED';
type DeviceModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResellerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	LicenseID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	IMEI        string     `gorm:"type:varchar(20);not null;index"`
	State       string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	ClientName  string     `gorm:"type:varchar(100)"`
	ClientPhone string     `gorm:"type:varchar(30)"`
	LockMessage string     `gorm:"type:text"`
	PolicyID    *uuid.UUID `gorm:"type:uuid;index"`

	Battery    *int     `gorm:"type:smallint"`
	Latitude   *float64 `gorm:"type:decimal(10,8)"`
	Longitude  *float64 `gorm:"type:decimal(11,8)"`
	Accuracy   *float64 `gorm:"type:decimal(10,2)"`
	LastSeenAt *time.Time

	ManagementState string `gorm:"type:varchar(40);not null;default:''"`
	LastReportAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceLocationModel mirrors the 'device_locations' table holding the
// bounded location history used for frequent-places aggregation.
type DeviceLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy   float64   `gorm:"type:decimal(10,2);not null;default:0"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceLocationModel) TableName() string {
	return "device_locations"
}
