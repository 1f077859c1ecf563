package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The email column holds the encrypted address; email_digest is the keyed
// digest used for lookups and uniqueness.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Sub         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Email       string    `gorm:"type:text;not null"`
	EmailDigest string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	APIKeys []APIKeyModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
