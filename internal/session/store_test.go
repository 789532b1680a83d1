package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Run("create then get", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		token, err := s.Create(1, "admin@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		sess, err := s.Get(token)
		require.NoError(t, err)
		assert.EqualValues(t, 1, sess.UserID)
		assert.Equal(t, "admin@example.com", sess.Email)
	})

	t.Run("tokens are unique per session", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		a, err := s.Create(1, "admin@example.com")
		require.NoError(t, err)
		b, err := s.Create(1, "admin@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("unknown token", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		_, err := s.Get("bogus")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("destroy invalidates token", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		token, err := s.Create(1, "admin@example.com")
		require.NoError(t, err)

		require.NoError(t, s.Destroy(token))
		_, err = s.Get(token)
		assert.ErrorIs(t, err, ErrSessionNotFound)

		// Destroying again is a no-op, not an error.
		assert.NoError(t, s.Destroy(token))
	})

	t.Run("expired session fails closed", func(t *testing.T) {
		s := NewMemoryStore(-time.Minute)
		token, err := s.Create(1, "admin@example.com")
		require.NoError(t, err)

		_, err = s.Get(token)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete expired sweeps only stale rows", func(t *testing.T) {
		stale := NewMemoryStore(-time.Minute)
		_, err := stale.Create(1, "a@example.com")
		require.NoError(t, err)
		dropped, err := stale.DeleteExpired()
		require.NoError(t, err)
		assert.EqualValues(t, 1, dropped)

		fresh := NewMemoryStore(time.Hour)
		_, err = fresh.Create(1, "a@example.com")
		require.NoError(t, err)
		dropped, err = fresh.DeleteExpired()
		require.NoError(t, err)
		assert.Zero(t, dropped)
	})
}
