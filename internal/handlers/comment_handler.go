package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/services"
	"github.com/kareemadel/topup-store/internal/storage"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListApproved is the public review feed: approved comments, newest first.
func (h *CommentHandler) ListApproved(c *fiber.Ctx) error {
	comments, err := h.comments.Approved()
	if err != nil {
		slog.Error("failed to fetch comments", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch comments"})
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid comment data"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid comment data"})
	}

	comment, err := h.comments.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCommentRejected) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid comment data"})
		}
		slog.Error("failed to create comment", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to create comment"})
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) ListAll(c *fiber.Ctx) error {
	comments, err := h.comments.All()
	if err != nil {
		slog.Error("failed to fetch comments", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch comments"})
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid comment data"})
	}

	comment, err := h.comments.Approve(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Comment not found"})
		}
		slog.Error("failed to approve comment", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to approve comment"})
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid comment data"})
	}

	if err := h.comments.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Comment not found"})
		}
		slog.Error("failed to delete comment", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to delete comment"})
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
