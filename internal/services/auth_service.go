package services

import (
	"errors"
	"fmt"

	"github.com/kareemadel/topup-store/internal/models"
	"github.com/kareemadel/topup-store/internal/session"
	"github.com/kareemadel/topup-store/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal whether an email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("admin access required")
)

type AuthService struct {
	store    storage.Storage
	sessions session.Store
}

func NewAuthService(store storage.Storage, sessions session.Store) *AuthService {
	return &AuthService{store: store, sessions: sessions}
}

// Login verifies credentials and, for admins only, establishes a session.
// The returned token is the opaque value handed to the client as a cookie.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsAdmin {
		return nil, "", ErrNotAdmin
	}

	token, err := s.sessions.Create(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to establish session: %w", err)
	}
	return user, token, nil
}

// Logout destroys the session server-side; clearing the cookie alone would
// leave the token usable until it expires.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Destroy(token)
}

// CurrentUser resolves a session token back to its user, re-validating
// against the store so a deleted account fails closed.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	sess, err := s.sessions.Get(token)
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUserByEmail(sess.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, session.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

// HashPassword is used by the seeder; cost is fixed at bcrypt's default.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
