package handlers

import (
	"farmacia/internal/domain"
	applog "farmacia/internal/log"
	"farmacia/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{"Title": "Inicio"})
}

// List shows the catalog; a store failure renders an empty catalog.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		products = []domain.Product{}
	}
	return render(c, "catalogo", fiber.Map{"Title": "Catálogo", "Products": products})
}
