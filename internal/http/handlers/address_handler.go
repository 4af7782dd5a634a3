package handlers

import (
	applog "farmacia/internal/log"
	"farmacia/internal/services"
	"farmacia/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	Book *services.AddressBook
}

func (h *AddressHandler) Form(c *fiber.Ctx) error {
	return render(c, "direccion_nueva", fiber.Map{"Title": "Nueva dirección"})
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	a := h.Book.Add(currentUser(c).Email, c.FormValue("calle"), c.FormValue("comuna"), c.FormValue("ref"))
	applog.Info(c, "address.add", map[string]any{"address_id": a.ID})
	return c.Redirect("/mis-direcciones")
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	return render(c, "mis_direcciones", fiber.Map{
		"Title":       "Mis direcciones",
		"Direcciones": h.Book.List(currentUser(c).Email),
	})
}

func (h *AddressHandler) Remove(c *fiber.Ctx) error {
	if pos, ok := validate.Position(c.FormValue("pos")); ok {
		h.Book.RemoveAt(currentUser(c).Email, pos)
	}
	return c.Redirect("/mis-direcciones")
}
