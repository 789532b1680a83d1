package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kareemadel/topup-store/internal/dto"
	"github.com/kareemadel/topup-store/internal/models"
	"github.com/kareemadel/topup-store/internal/session"
	"github.com/kareemadel/topup-store/internal/storage"
)

// UserKey is the fiber.Ctx locals key the resolved admin user is stored
// under.
const UserKey = "currentUser"

// RequireAdmin gates admin routes behind the session cookie. The session is
// re-resolved against the store on every request, so a user deleted or
// demoted after login fails closed instead of riding a stale cookie.
func RequireAdmin(store storage.Storage, sessions session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized",
			})
		}

		sess, err := sessions.Get(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized",
			})
		}

		user, err := store.GetUserByEmail(sess.Email)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized",
			})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Message: "Admin access required",
			})
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the admin user attached by RequireAdmin, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
