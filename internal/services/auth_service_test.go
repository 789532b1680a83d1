package services

import (
	"testing"
	"time"

	"github.com/kareemadel/topup-store/internal/models"
	"github.com/kareemadel/topup-store/internal/session"
	"github.com/kareemadel/topup-store/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, storage.Storage, session.Store) {
	t.Helper()
	store := storage.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(&models.User{Email: "admin@example.com", Password: hash, IsAdmin: true}))

	hash, err = HashPassword("customer-pass")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(&models.User{Email: "user@example.com", Password: hash, IsAdmin: false}))

	return NewAuthService(store, sessions), store, sessions
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("admin login issues a session", func(t *testing.T) {
		svc, _, sessions := newAuthFixture(t)
		user, token, err := svc.Login("admin@example.com", "correct-horse")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		require.NotEmpty(t, token)

		sess, err := sessions.Get(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", sess.Email)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)
		_, _, errUnknown := svc.Login("ghost@example.com", "whatever")
		_, _, errWrong := svc.Login("admin@example.com", "wrong-pass")
		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("valid non-admin gets forbidden and no session", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)
		_, token, err := svc.Login("user@example.com", "customer-pass")
		assert.ErrorIs(t, err, ErrNotAdmin)
		assert.Empty(t, token)
	})
}

func TestAuthServiceSessions(t *testing.T) {
	t.Run("current user resolves through the store", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)
		_, token, err := svc.Login("admin@example.com", "correct-horse")
		require.NoError(t, err)

		user, err := svc.CurrentUser(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("logout destroys the session server-side", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)
		_, token, err := svc.Login("admin@example.com", "correct-horse")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(token))

		// Replaying the old token must fail closed.
		_, err = svc.CurrentUser(token)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}
