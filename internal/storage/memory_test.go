package storage

import (
	"testing"
	"time"

	"github.com/kareemadel/topup-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func seedGame(t *testing.T, s Storage, name, slug string, active bool) *models.Game {
	t.Helper()
	game := &models.Game{Name: name, Slug: slug, IsActive: active}
	require.NoError(t, s.CreateGame(game))
	return game
}

func TestMemoryGames(t *testing.T) {
	t.Run("public listing filters inactive and sorts by name", func(t *testing.T) {
		s := NewMemory()
		seedGame(t, s, "Valorant", "valorant", true)
		seedGame(t, s, "Crossfire", "crossfire", true)
		seedGame(t, s, "PUBG Mobile", "pubg-mobile", false)

		games, err := s.GetGames()
		require.NoError(t, err)
		require.Len(t, games, 2)
		assert.Equal(t, "Crossfire", games[0].Name)
		assert.Equal(t, "Valorant", games[1].Name)

		all, err := s.GetAllGames()
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("duplicate slug rejected", func(t *testing.T) {
		s := NewMemory()
		seedGame(t, s, "Free Fire", "free-fire", true)
		err := s.CreateGame(&models.Game{Name: "Free Fire 2", Slug: "free-fire", IsActive: true})
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	t.Run("update patches only given fields", func(t *testing.T) {
		s := NewMemory()
		game := seedGame(t, s, "Free Fire", "free-fire", true)

		updated, err := s.UpdateGame(game.ID, map[string]interface{}{"is_active": false})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Free Fire", updated.Name)
		assert.Equal(t, "free-fire", updated.Slug)
	})

	t.Run("update unknown id returns not found", func(t *testing.T) {
		s := NewMemory()
		_, err := s.UpdateGame(99, map[string]interface{}{"name": "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete reports whether a row was affected", func(t *testing.T) {
		s := NewMemory()
		game := seedGame(t, s, "Free Fire", "free-fire", true)

		deleted, err := s.DeleteGame(game.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.DeleteGame(game.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMemoryGameCards(t *testing.T) {
	t.Run("game with cards returns active cards by ascending price", func(t *testing.T) {
		s := NewMemory()
		game := seedGame(t, s, "Free Fire", "free-fire", true)

		require.NoError(t, s.CreateGameCard(&models.GameCard{GameID: game.ID, Points: "310", Price: 150, IsActive: true}))
		require.NoError(t, s.CreateGameCard(&models.GameCard{GameID: game.ID, Points: "100", Bonus: strptr("+10"), Price: 50, IsActive: true}))
		require.NoError(t, s.CreateGameCard(&models.GameCard{GameID: game.ID, Points: "520", Price: 250, IsActive: false}))

		got, err := s.GetGameWithCards("free-fire")
		require.NoError(t, err)
		require.Len(t, got.Cards, 2)
		assert.Equal(t, "100", got.Cards[0].Points)
		assert.Equal(t, "310", got.Cards[1].Points)
	})

	t.Run("unknown slug returns not found", func(t *testing.T) {
		s := NewMemory()
		_, err := s.GetGameWithCards("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("count includes inactive cards", func(t *testing.T) {
		s := NewMemory()
		game := seedGame(t, s, "Free Fire", "free-fire", true)
		require.NoError(t, s.CreateGameCard(&models.GameCard{GameID: game.ID, Points: "100", Price: 50, IsActive: false}))

		count, err := s.CountGameCards(game.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func TestMemoryComments(t *testing.T) {
	t.Run("created comments are always unapproved", func(t *testing.T) {
		s := NewMemory()
		comment := &models.Comment{Name: "Omar", Rating: 5, Comment: "great", IsApproved: true}
		require.NoError(t, s.CreateComment(comment))
		assert.False(t, comment.IsApproved)

		approved, err := s.GetApprovedComments()
		require.NoError(t, err)
		assert.Empty(t, approved)
	})

	t.Run("approve is idempotent", func(t *testing.T) {
		s := NewMemory()
		comment := &models.Comment{Name: "Omar", Rating: 4, Comment: "good"}
		require.NoError(t, s.CreateComment(comment))

		first, err := s.ApproveComment(comment.ID)
		require.NoError(t, err)
		assert.True(t, first.IsApproved)

		second, err := s.ApproveComment(comment.ID)
		require.NoError(t, err)
		assert.True(t, second.IsApproved)
	})

	t.Run("approve unknown id returns not found", func(t *testing.T) {
		s := NewMemory()
		_, err := s.ApproveComment(42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("listings are newest first", func(t *testing.T) {
		s := NewMemory()
		old := &models.Comment{Name: "A", Rating: 3, Comment: "ok", CreatedAt: time.Now().Add(-time.Hour)}
		recent := &models.Comment{Name: "B", Rating: 5, Comment: "new", CreatedAt: time.Now()}
		require.NoError(t, s.CreateComment(old))
		require.NoError(t, s.CreateComment(recent))

		all, err := s.GetAllComments()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "B", all[0].Name)
	})
}
