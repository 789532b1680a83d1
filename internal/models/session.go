package models

import (
	"time"

	"github.com/google/uuid"
)

// Session associates an opaque client-held token with an authenticated
// user. Only the SHA-256 hash of the token is stored.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TokenHash string    `gorm:"not null;size:64;uniqueIndex" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
