package handlers

import (
	"fmt"
	"strings"
	"time"

	"farmacia/internal/log"
	"farmacia/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Title": "Ingresar"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := strings.TrimSpace(c.FormValue("email"))
	pass := c.FormValue("password")

	u, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return render(c.Status(fiber.StatusUnauthorized), "login", fiber.Map{
			"Title": "Ingresar",
			"Err":   "Credenciales inválidas. Intente nuevamente.",
		})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": u.Email, "role": u.Role})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

// WhoAmI is a plain-text diagnostic of the current session.
func (h *AuthHandler) WhoAmI(c *fiber.Ctx) error {
	u := sessionUser(c, h.Auth)
	if u == nil {
		return c.SendString("No logueado")
	}
	return c.SendString(fmt.Sprintf("Dentro: %s (%s)", u.Email, u.Role))
}
