package handlers

import (
	"errors"

	applog "farmacia/internal/log"
	"farmacia/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	Subs *services.SubscriptionService
}

func (h *SubscriptionHandler) Form(c *fiber.Ctx) error {
	return render(c, "suscribir", fiber.Map{"Title": "Newsletter", "OK": c.Query("ok") == "1"})
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	s, err := h.Subs.Subscribe(c.FormValue("nombre"), c.FormValue("email"))
	switch {
	case errors.Is(err, services.ErrEmailRequired):
		return h.formError(c, "El email es obligatorio.")
	case errors.Is(err, services.ErrEmailInvalid):
		return h.formError(c, "El email no es válido.")
	}
	if err != nil {
		applog.Error(c, "subscription.add.fail", err, nil)
		return renderMessage(c, fiber.StatusInternalServerError, "No pudimos registrar tu suscripción. Intenta nuevamente.")
	}
	applog.Audit(c, "subscription.add", map[string]any{"subscription_id": s.ID})
	return c.Redirect("/suscribir?ok=1")
}

func (h *SubscriptionHandler) formError(c *fiber.Ctx, msg string) error {
	return render(c.Status(fiber.StatusBadRequest), "suscribir", fiber.Map{"Title": "Newsletter", "Err": msg})
}
