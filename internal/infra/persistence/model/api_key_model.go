package model

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
)

// APIKeyModel mirrors the 'api_keys' table. Only the keyed digest of the
// issued token is stored; the token itself is shown to the owner once.
type APIKeyModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID                   `gorm:"type:uuid;index;not null"`
	Name      string                      `gorm:"type:varchar(100);not null"`
	TokenHash string                      `gorm:"type:varchar(128);uniqueIndex;not null"`
	Scopes    datatypes.JSONSlice[string] `gorm:"not null"`
	ExpiresAt *time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}
