package model

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCodeModel mirrors the 'verification_codes' table. At most one
// row exists per email digest; resends replace the row in place. The email
// column stays plaintext because rows live minutes, not months, and the code
// mailer needs the address back verbatim.
type VerificationCodeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmailDigest string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email       string    `gorm:"type:text;not null"`
	Value       string    `gorm:"type:varchar(512);not null"` // argon2id hash
	Count       int       `gorm:"not null;default:1"`
	Attempts    int       `gorm:"not null;default:0"`
	IssuedAt    time.Time
	ExpiresAt   time.Time `gorm:"index"`
	Cooldown    *time.Time
	SessionID   uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}
