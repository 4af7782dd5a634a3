package services

import (
	"strings"
	"time"

	"farmacia/internal/domain"
	"farmacia/internal/store"
)

type CheckoutService struct {
	Cart      *CartService
	Addresses *AddressBook
	Orders    *OrderLedger
	IDs       *store.IDGen
	Now       func() time.Time
}

func NewCheckoutService(cart *CartService, addresses *AddressBook, orders *OrderLedger, ids *store.IDGen) *CheckoutService {
	return &CheckoutService{Cart: cart, Addresses: addresses, Orders: orders, IDs: ids, Now: time.Now}
}

// Confirm turns userKey's cart into a reserva and empties the cart. An
// empty cart returns ErrEmptyCart and changes nothing. addressPos is only
// read for home delivery; pass -1 when none was chosen.
func (s *CheckoutService) Confirm(userKey, delivery string, addressPos int, payment string) (domain.Order, error) {
	delivery = NormalizeDelivery(delivery)
	payment = strings.TrimSpace(payment)
	if payment == "" {
		payment = domain.PaymentCash
	}

	var addr *domain.Address
	if delivery == domain.DeliveryShipping {
		if a, ok := s.Addresses.At(userKey, addressPos); ok {
			addr = &a
		}
	}

	var order domain.Order
	err := ErrEmptyCart
	// Build, record and clear under the cart lock so a double submit cannot
	// turn one cart into two orders.
	s.Cart.Lines.Update(userKey, func(lines []domain.CartLine) []domain.CartLine {
		if len(lines) == 0 {
			return lines
		}
		total := CartTotal(lines)
		order = domain.Order{
			ID:        s.IDs.Next(),
			CreatedAt: s.Now(),
			Items:     snapshotItems(lines),
			Total:     total,
			Delivery:  delivery,
			Address:   addr,
			Payment:   payment,
			Status:    domain.StatusPending,
			Points:    Points(total),
		}
		s.Orders.Append(userKey, order)
		err = nil
		return []domain.CartLine{}
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// NormalizeDelivery maps anything but "delivery" to pickup.
func NormalizeDelivery(s string) string {
	if strings.ToLower(strings.TrimSpace(s)) == domain.DeliveryShipping {
		return domain.DeliveryShipping
	}
	return domain.DeliveryPickup
}

func snapshotItems(lines []domain.CartLine) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{Name: l.Name, Qty: l.Qty, Price: l.Price, Discount: l.Discount})
	}
	return items
}
