package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PolicyModel mirrors the 'policies' table. The configuration profile is
// stored as JSONB; the lifecycle core only reads identity and the default
// marking. A partial unique index (created in migrations) keeps one default
// per tenant:
//
//	CREATE UNIQUE INDEX uidx_policies_tenant_default ON policies (reseller_id) WHERE is_default;
type PolicyModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResellerID  uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uidx_policies_tenant_name"`
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:uidx_policies_tenant_name"`
	Description string         `gorm:"type:text"`
	Version     int            `gorm:"not null;default:1"`
	IsDefault   bool           `gorm:"not null;default:false"`
	Config      datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PolicyModel) TableName() string {
	return "policies"
}
