package services

import (
	"testing"

	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceGames(t *testing.T) {
	t.Run("slug derived from name when omitted", func(t *testing.T) {
		svc := NewCatalogService(storage.NewMemory())
		game, err := svc.CreateGame(&dto.CreateGameRequest{Name: "Free Fire"})
		require.NoError(t, err)
		assert.Equal(t, "free-fire", game.Slug)
		assert.True(t, game.IsActive)
	})

	t.Run("client slug is normalized", func(t *testing.T) {
		svc := NewCatalogService(storage.NewMemory())
		game, err := svc.CreateGame(&dto.CreateGameRequest{Name: "PUBG Mobile", Slug: "PUBG Mobile UC!"})
		require.NoError(t, err)
		assert.Equal(t, "pubg-mobile-uc", game.Slug)
	})

	t.Run("duplicate slug surfaces as conflict", func(t *testing.T) {
		svc := NewCatalogService(storage.NewMemory())
		_, err := svc.CreateGame(&dto.CreateGameRequest{Name: "Free Fire"})
		require.NoError(t, err)
		_, err = svc.CreateGame(&dto.CreateGameRequest{Name: "Free fire"})
		assert.ErrorIs(t, err, storage.ErrDuplicateSlug)
	})
}

func TestCatalogServiceDeleteGame(t *testing.T) {
	t.Run("blocked while cards exist", func(t *testing.T) {
		store := storage.NewMemory()
		svc := NewCatalogService(store)
		game, err := svc.CreateGame(&dto.CreateGameRequest{Name: "Free Fire"})
		require.NoError(t, err)

		card, err := svc.CreateCard(game.ID, &dto.CreateCardRequest{Points: "100", Price: 50})
		require.NoError(t, err)

		assert.ErrorIs(t, svc.DeleteGame(game.ID), ErrGameHasCards)

		require.NoError(t, svc.DeleteCard(card.ID))
		assert.NoError(t, svc.DeleteGame(game.ID))
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc := NewCatalogService(storage.NewMemory())
		assert.ErrorIs(t, svc.DeleteGame(123), storage.ErrNotFound)
	})
}

func TestCatalogServiceCards(t *testing.T) {
	t.Run("card creation requires an existing game", func(t *testing.T) {
		svc := NewCatalogService(storage.NewMemory())
		_, err := svc.CreateCard(99, &dto.CreateCardRequest{Points: "100", Price: 50})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("deactivated card drops out of the public shape", func(t *testing.T) {
		svc := NewCatalogService(storage.NewMemory())
		game, err := svc.CreateGame(&dto.CreateGameRequest{Name: "Free Fire"})
		require.NoError(t, err)
		card, err := svc.CreateCard(game.ID, &dto.CreateCardRequest{Points: "100", Price: 50})
		require.NoError(t, err)

		inactive := false
		_, err = svc.UpdateCard(card.ID, &dto.UpdateCardRequest{IsActive: &inactive})
		require.NoError(t, err)

		got, err := svc.GameWithCards("free-fire")
		require.NoError(t, err)
		assert.Empty(t, got.Cards)

		// The admin view still sees it.
		all, err := svc.GameCards(game.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
