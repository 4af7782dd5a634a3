package domain

import "time"

// Upper bounds for form input. A cart line never holds more than MaxQty
// units and prices never exceed MaxPrice, which keeps every total well
// inside int range.
const (
	MaxQty   = 50
	MaxPrice = 10_000_000
)

// Delivery types
const (
	DeliveryPickup   = "pickup"
	DeliveryShipping = "delivery"
)

// Order statuses offered in the admin panel. Status is free text on the
// order itself; these are only the suggested values.
const (
	StatusPending   = "Pendiente"
	StatusPreparing = "Preparando"
	StatusReady     = "Lista para retiro"
	StatusShipped   = "En despacho"
	StatusDelivered = "Entregada"
	StatusCanceled  = "Cancelada"
)

var OrderStatuses = []string{StatusPending, StatusPreparing, StatusReady, StatusShipped, StatusDelivered, StatusCanceled}

const PaymentCash = "Efectivo"

var PaymentMethods = []string{PaymentCash, "Débito", "Crédito", "Transferencia"}

type Product struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Price    int    `db:"price"`
	Stock    int    `db:"stock"`
	Discount int    `db:"discount"` // percent 0-100
	Image    string `db:"image"`
	Active   bool   `db:"active"`
}

// CartLine snapshots name, price and discount at the moment the product was
// first added; later catalog changes do not touch it.
type CartLine struct {
	ProductID int64
	Name      string
	Price     int
	Qty       int
	Discount  int
}

type Address struct {
	ID       int64
	Street   string // calle
	Locality string // comuna
	Note     string
}

type OrderItem struct {
	Name     string
	Qty      int
	Price    int // undiscounted unit price
	Discount int
}

// Order is a "reserva". Only Status changes after creation.
type Order struct {
	ID        int64
	CreatedAt time.Time
	Items     []OrderItem
	Total     int
	Delivery  string
	Address   *Address
	Payment   string
	Status    string
	Points    int
}

// OwnedOrder tags an order with the email of the user it belongs to.
type OwnedOrder struct {
	Owner string
	Order
}

type Subscription struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	CreatedAt string `db:"created_at"`
}
