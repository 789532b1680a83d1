package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// CookieName is the cookie carrying the opaque session token.
const CookieName = "topup_session"

// Session is the server-held association between an opaque client token and
// an authenticated user's identity.
type Session struct {
	UserID    uint
	Email     string
	ExpiresAt time.Time
}

// Store is the session seam: login/logout write it, the auth middleware
// reads it. Implementations must treat the token as opaque and never
// persist it in clear text.
type Store interface {
	// Create issues a new session and returns the raw token handed to the
	// client as a cookie.
	Create(userID uint, email string) (string, error)
	// Get resolves a raw token; expired or unknown tokens return
	// ErrSessionNotFound.
	Get(token string) (*Session, error)
	// Destroy invalidates the session server-side. Destroying an unknown
	// token is not an error.
	Destroy(token string) error
	// DeleteExpired removes expired rows and reports how many were dropped.
	DeleteExpired() (int64, error)
}

func newToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
