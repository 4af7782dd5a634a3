package handlers

import (
	"errors"

	"farmacia/internal/domain"
	applog "farmacia/internal/log"
	"farmacia/internal/services"
	"farmacia/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart      *services.CartService
	Addresses *services.AddressBook
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	u := currentUser(c)
	return render(c, "carrito", fiber.Map{
		"Title":     "Mi carrito",
		"Cart":      h.Cart.View(u.Email),
		"Addresses": h.Addresses.List(u.Email),
		"Payments":  domain.PaymentMethods,
	})
}

// POST /carrito/agregar
func (h *CartHandler) Add(c *fiber.Ctx) error {
	u := currentUser(c)
	qty := validate.Qty(c.FormValue("cantidad"))
	err := services.ErrProductNotFound
	if id, ok := validate.ID(c.FormValue("id")); ok {
		err = h.Cart.Add(u.Email, id, qty)
	}
	if err != nil {
		// a failing catalog reads as an empty one
		if !errors.Is(err, services.ErrProductNotFound) {
			applog.Error(c, "cart.add.fail", err, map[string]any{"product": c.FormValue("id")})
		}
		return c.Status(fiber.StatusBadRequest).SendString("Producto no encontrado")
	}
	applog.Info(c, "cart.add", map[string]any{"product": c.FormValue("id"), "qty": qty})
	return c.Redirect("/carrito")
}

// POST /carrito/eliminar; a bad position leaves the cart untouched.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	if pos, ok := validate.Position(c.FormValue("pos")); ok {
		h.Cart.RemoveAt(currentUser(c).Email, pos)
	}
	return c.Redirect("/carrito")
}
