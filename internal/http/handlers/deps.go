package handlers

import (
	"farmacia/internal/domain"
	"farmacia/internal/repos"
	"farmacia/internal/services"
	"farmacia/internal/store"

	"github.com/jmoiron/sqlx"
)

// Deps owns the services and the in-memory per-user state. Carts,
// addresses and reservas live as long as the Deps value does.
type Deps struct {
	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Addresses *services.AddressBook
	Orders    *services.OrderLedger
	Checkout  *services.CheckoutService
	Subs      *services.SubscriptionService

	AuthHandler         *AuthHandler
	CatalogHandler      *CatalogHandler
	CartHandler         *CartHandler
	OrderHandler        *OrderHandler
	AddressHandler      *AddressHandler
	SubscriptionHandler *SubscriptionHandler
	AdminHandler        *AdminHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	userRepo := repos.NewUserRepo(db)
	subRepo := repos.NewSubscriptionRepo(db)
	ids := store.NewIDGen()

	d := &Deps{
		Auth:      &services.AuthService{Users: userRepo},
		Catalog:   services.NewCatalogService(prodRepo),
		Addresses: services.NewAddressBook(store.NewMemory[domain.Address](), ids),
		Orders:    services.NewOrderLedger(store.NewMemory[domain.Order]()),
		Subs:      services.NewSubscriptionService(subRepo),
	}
	d.Cart = services.NewCartService(store.NewMemory[domain.CartLine](), d.Catalog)
	d.Checkout = services.NewCheckoutService(d.Cart, d.Addresses, d.Orders, ids)

	d.AuthHandler = &AuthHandler{Auth: d.Auth}
	d.CatalogHandler = &CatalogHandler{Catalog: d.Catalog}
	d.CartHandler = &CartHandler{Cart: d.Cart, Addresses: d.Addresses}
	d.OrderHandler = &OrderHandler{Checkout: d.Checkout, Orders: d.Orders}
	d.AddressHandler = &AddressHandler{Book: d.Addresses}
	d.SubscriptionHandler = &SubscriptionHandler{Subs: d.Subs}
	d.AdminHandler = &AdminHandler{Catalog: d.Catalog, Orders: d.Orders, Subs: d.Subs}
	return d
}
