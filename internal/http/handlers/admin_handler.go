package handlers

import (
	"errors"

	"farmacia/internal/domain"
	applog "farmacia/internal/log"
	"farmacia/internal/repos"
	"farmacia/internal/services"
	"farmacia/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Orders  *services.OrderLedger
	Subs    *services.SubscriptionService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		products = []domain.Product{}
	}
	subs, err := h.Subs.List()
	if err != nil {
		applog.Error(c, "admin.subscriptions.list.fail", err, nil)
		subs = []domain.Subscription{}
	}
	return render(c, "admin", fiber.Map{"Title": "Admin", "Products": products, "Subscriptions": subs})
}

// POST /admin/producto/nuevo
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	id, err := h.Catalog.Create(
		c.FormValue("nombre"),
		validate.Int(c.FormValue("precio")),
		validate.Int(c.FormValue("stock")),
		validate.Int(c.FormValue("descuento")),
		c.FormValue("img"),
	)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, nil)
		return renderMessage(c, fiber.StatusInternalServerError, "No se pudo crear el producto.")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": id})
	return c.Redirect("/catalogo")
}

// POST /admin/producto/:id/stock
func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	stock := validate.Int(c.FormValue("stock"))
	return h.mutateProduct(c, "admin.products.stock", map[string]any{"stock": stock}, func(id int64) error {
		return h.Catalog.UpdateStock(id, stock)
	})
}

// POST /admin/producto/:id/descuento
func (h *AdminHandler) UpdateDiscount(c *fiber.Ctx) error {
	discount := validate.Int(c.FormValue("descuento"))
	return h.mutateProduct(c, "admin.products.discount", map[string]any{"discount": discount}, func(id int64) error {
		return h.Catalog.UpdateDiscount(id, discount)
	})
}

// POST /admin/producto/:id/eliminar
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	return h.mutateProduct(c, "admin.products.delete", nil, h.Catalog.Delete)
}

func (h *AdminHandler) mutateProduct(c *fiber.Ctx, action string, fields map[string]any, fn func(int64) error) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return renderMessage(c, fiber.StatusNotFound, "Producto no encontrado")
	}
	if fields == nil {
		fields = map[string]any{}
	}
	fields["product_id"] = id
	if err := fn(id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return renderMessage(c, fiber.StatusNotFound, "Producto no encontrado")
		}
		applog.Error(c, action+".fail", err, fields)
		return renderMessage(c, fiber.StatusInternalServerError, "No se pudo actualizar el producto.")
	}
	applog.Audit(c, action, fields)
	return c.Redirect("/admin")
}

// GET /admin/reservas
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	return render(c, "admin_reservas", fiber.Map{
		"Title":    "Reservas",
		"Reservas": h.Orders.ListAll(),
		"Statuses": domain.OrderStatuses,
	})
}

// POST /admin/reservas/:id/estado. Unknown owner/id pairs change nothing.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	owner := c.FormValue("email")
	status := c.FormValue("estado")
	found := false
	if id, ok := validate.ID(c.Params("id")); ok {
		found = h.Orders.SetStatus(owner, id, status)
	}
	applog.Audit(c, "admin.orders.status", map[string]any{
		"order_id": c.Params("id"),
		"owner":    owner,
		"status":   status,
		"found":    found,
	})
	return c.Redirect("/admin/reservas")
}
