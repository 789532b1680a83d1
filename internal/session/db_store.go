package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kareemadel/topup-store/internal/models"
	"gorm.io/gorm"
)

// DBStore keeps sessions in the relational store so they survive restarts
// and are shared across instances.
type DBStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewDBStore(db *gorm.DB, ttl time.Duration) *DBStore {
	return &DBStore{db: db, ttl: ttl}
}

func (s *DBStore) Create(userID uint, email string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	record := models.Session{
		ID:        uuid.New(),
		TokenHash: hashToken(token),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *DBStore) Get(token string) (*Session, error) {
	var record models.Session
	err := s.db.Where("token_hash = ?", hashToken(token)).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if time.Now().After(record.ExpiresAt) {
		s.db.Delete(&record)
		return nil, ErrSessionNotFound
	}
	return &Session{UserID: record.UserID, Email: record.Email, ExpiresAt: record.ExpiresAt}, nil
}

func (s *DBStore) Destroy(token string) error {
	return s.db.Where("token_hash = ?", hashToken(token)).Delete(&models.Session{}).Error
}

func (s *DBStore) DeleteExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
