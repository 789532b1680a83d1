package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/services"
	"github.com/kareemadel/topup-store/internal/storage"
)

type GameHandler struct {
	catalog *services.CatalogService
}

func NewGameHandler(catalog *services.CatalogService) *GameHandler {
	return &GameHandler{catalog: catalog}
}

// List returns active games only; the admin panel uses ListAll.
func (h *GameHandler) List(c *fiber.Ctx) error {
	games, err := h.catalog.ActiveGames()
	if err != nil {
		slog.Error("failed to fetch games", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch games"})
	}
	return c.JSON(games)
}

func (h *GameHandler) GetBySlug(c *fiber.Ctx) error {
	game, err := h.catalog.GameWithCards(c.Params("slug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Game not found"})
		}
		slog.Error("failed to fetch game", "slug", c.Params("slug"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch game"})
	}
	return c.JSON(game)
}

func (h *GameHandler) ListAll(c *fiber.Ctx) error {
	games, err := h.catalog.AllGames()
	if err != nil {
		slog.Error("failed to fetch games", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch games"})
	}
	return c.JSON(games)
}

func (h *GameHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}

	game, err := h.catalog.CreateGame(&req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSlug) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Slug already in use"})
		}
		slog.Error("failed to create game", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to create game"})
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

func (h *GameHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}

	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}

	game, err := h.catalog.UpdateGame(id, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Game not found"})
		}
		if errors.Is(err, storage.ErrDuplicateSlug) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Slug already in use"})
		}
		slog.Error("failed to update game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update game"})
	}
	return c.JSON(game)
}

func (h *GameHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}

	if err := h.catalog.DeleteGame(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Game not found"})
		}
		if errors.Is(err, services.ErrGameHasCards) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Game still has cards; delete them first"})
		}
		slog.Error("failed to delete game", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to delete game"})
	}
	return c.JSON(fiber.Map{"message": "Game deleted"})
}

// ListCards returns every card of a game, active or not, for the admin
// panel.
func (h *GameHandler) ListCards(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid game data"})
	}

	cards, err := h.catalog.GameCards(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Game not found"})
		}
		slog.Error("failed to fetch cards", "game_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch cards"})
	}
	return c.JSON(cards)
}
