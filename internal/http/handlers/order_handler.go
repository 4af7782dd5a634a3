package handlers

import (
	"errors"

	applog "farmacia/internal/log"
	"farmacia/internal/services"
	"farmacia/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Checkout *services.CheckoutService
	Orders   *services.OrderLedger
}

// POST /carrito/confirmar
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	u := currentUser(c)
	pos, _ := validate.Position(c.FormValue("direccion"))

	o, err := h.Checkout.Confirm(u.Email, c.FormValue("tipo_entrega"), pos, c.FormValue("metodo_pago"))
	if errors.Is(err, services.ErrEmptyCart) {
		return c.Redirect("/carrito")
	}
	if err != nil {
		applog.Error(c, "order.confirm.fail", err, nil)
		return renderMessage(c, fiber.StatusInternalServerError, "No pudimos confirmar tu reserva. Intenta nuevamente.")
	}
	applog.Audit(c, "order.confirm", map[string]any{
		"order_id": o.ID,
		"total":    o.Total,
		"points":   o.Points,
		"delivery": o.Delivery,
	})
	return c.Redirect("/mis-reservas")
}

// GET /mis-reservas
func (h *OrderHandler) Mine(c *fiber.Ctx) error {
	return render(c, "mis_reservas", fiber.Map{
		"Title":    "Mis reservas",
		"Reservas": h.Orders.List(currentUser(c).Email),
	})
}
