package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/kareemadel/topup-store/internal/handlers"
	"github.com/kareemadel/topup-store/internal/middleware"
	"github.com/kareemadel/topup-store/internal/session"
	"github.com/kareemadel/topup-store/internal/storage"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Game    *handlers.GameHandler
	Card    *handlers.CardHandler
	Comment *handlers.CommentHandler
	Health  *handlers.HealthHandler
}

func Setup(app *fiber.App, store storage.Storage, sessions session.Store, h Handlers) {
	api := app.Group("/api")

	api.Get("/health", h.Health.Check)

	// Auth-specific rate limit: login is the only brute-forceable surface.
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", h.Auth.Me)

	// Public catalog and reviews
	api.Get("/games", h.Game.List)
	api.Get("/games/:slug", h.Game.GetBySlug)
	api.Get("/comments", h.Comment.ListApproved)
	api.Post("/comments", h.Comment.Create)

	// Admin panel
	admin := api.Group("/admin", middleware.RequireAdmin(store, sessions))
	admin.Get("/games", h.Game.ListAll)
	admin.Post("/games", h.Game.Create)
	admin.Patch("/games/:id", h.Game.Update)
	admin.Delete("/games/:id", h.Game.Delete)
	admin.Get("/games/:id/cards", h.Game.ListCards)
	admin.Post("/games/:gameId/cards", h.Card.Create)
	admin.Patch("/cards/:id", h.Card.Update)
	admin.Delete("/cards/:id", h.Card.Delete)
	admin.Get("/comments", h.Comment.ListAll)
	admin.Patch("/comments/:id/approve", h.Comment.Approve)
	admin.Delete("/comments/:id", h.Comment.Delete)
}
