package handlers

import (
	"time"

	applog "farmacia/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Mount registers every page and form route on app.
func Mount(app *fiber.App, d *Deps) {
	app.Get("/", d.CatalogHandler.Home)
	app.Get("/catalogo", d.CatalogHandler.List)

	app.Get("/suscribir", d.SubscriptionHandler.Form)
	app.Post("/suscribir", d.SubscriptionHandler.Subscribe)

	// Auth routes (login throttled)
	app.Get("/login", d.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return render(c.Status(fiber.StatusTooManyRequests), "login", fiber.Map{
				"Title": "Ingresar",
				"Err":   "Demasiados intentos. Intenta más tarde.",
			})
		},
	}), d.AuthHandler.Login)
	app.Post("/logout", d.AuthHandler.Logout)
	app.Get("/whoami", d.AuthHandler.WhoAmI)

	user := RequireUser(d.Auth)

	// Cart & reservas
	app.Get("/carrito", user, d.CartHandler.View)
	app.Post("/carrito/agregar", user, d.CartHandler.Add)
	app.Post("/carrito/eliminar", user, d.CartHandler.Remove)
	app.Post("/carrito/confirmar", user, d.OrderHandler.Confirm)
	app.Get("/mis-reservas", user, d.OrderHandler.Mine)

	// Address book
	app.Get("/direcciones/nueva", user, d.AddressHandler.Form)
	app.Post("/direcciones/nueva", user, d.AddressHandler.Create)
	app.Get("/mis-direcciones", user, d.AddressHandler.List)
	app.Post("/direcciones/eliminar", user, d.AddressHandler.Remove)

	// Admin
	admin := app.Group("/admin", RequireAdmin(d.Auth))
	admin.Get("/", d.AdminHandler.Dashboard)
	admin.Post("/producto/nuevo", d.AdminHandler.CreateProduct)
	admin.Post("/producto/:id/stock", d.AdminHandler.UpdateStock)
	admin.Post("/producto/:id/descuento", d.AdminHandler.UpdateDiscount)
	admin.Post("/producto/:id/eliminar", d.AdminHandler.DeleteProduct)
	admin.Get("/reservas", d.AdminHandler.OrdersPage)
	admin.Post("/reservas/:id/estado", d.AdminHandler.UpdateOrderStatus)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
