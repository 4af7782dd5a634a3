package handlers

import (
	"farmacia/internal/domain"
	applog "farmacia/internal/log"
	"farmacia/internal/services"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

// AttachUser puts the logged-in user (if any) into Locals for templates.
func AttachUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := auth.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	}
}

func sessionUser(c *fiber.Ctx, auth *services.AuthService) *domain.User {
	if u := currentUser(c); u != nil {
		return u
	}
	sid := c.Cookies("sid")
	if sid == "" {
		return nil
	}
	u, err := auth.CurrentUser(sid)
	if err != nil {
		return nil
	}
	c.Locals("user", u)
	return u
}

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := sessionUser(c, auth)
		if !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).SendString("Acceso restringido: solo ADMIN")
		}
		return c.Next()
	}
}

// RequireUser enforces that some user is logged in.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionUser(c, auth) == nil {
			return c.Status(fiber.StatusUnauthorized).SendString("Debes iniciar sesión")
		}
		return c.Next()
	}
}
