package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/services"
	"github.com/kareemadel/topup-store/internal/storage"
)

type CardHandler struct {
	catalog *services.CatalogService
}

func NewCardHandler(catalog *services.CatalogService) *CardHandler {
	return &CardHandler{catalog: catalog}
}

func (h *CardHandler) Create(c *fiber.Ctx) error {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}

	var req dto.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}

	card, err := h.catalog.CreateCard(gameID, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Game not found"})
		}
		slog.Error("failed to create card", "game_id", gameID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to create card"})
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *CardHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}

	var req dto.UpdateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}

	card, err := h.catalog.UpdateCard(id, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Card not found"})
		}
		slog.Error("failed to update card", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update card"})
	}
	return c.JSON(card)
}

func (h *CardHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid card data"})
	}

	if err := h.catalog.DeleteCard(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Card not found"})
		}
		slog.Error("failed to delete card", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to delete card"})
	}
	return c.JSON(fiber.Map{"message": "Card deleted"})
}
