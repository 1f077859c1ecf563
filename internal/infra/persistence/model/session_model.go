package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. The ID doubles as the unsigned
// cookie value, so it is supplied by the application rather than generated by
// the database.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Data      []byte    `gorm:"type:bytea"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
