package services

import (
	"strings"

	"farmacia/internal/domain"
	"farmacia/internal/store"
)

// OrderLedger keeps each user's reservas. Orders are only indexed per user.
type OrderLedger struct {
	Orders store.Keyed[domain.Order]
}

func NewOrderLedger(orders store.Keyed[domain.Order]) *OrderLedger {
	return &OrderLedger{Orders: orders}
}

func (l *OrderLedger) Append(userKey string, o domain.Order) {
	l.Orders.Update(userKey, func(cur []domain.Order) []domain.Order {
		return append(cur, o)
	})
}

// SetStatus overwrites the status of userKey's order id. An empty status
// resets to Pendiente. Reports whether an order matched; unknown ids are a
// no-op.
func (l *OrderLedger) SetStatus(userKey string, id int64, status string) bool {
	status = strings.TrimSpace(status)
	if status == "" {
		status = domain.StatusPending
	}
	found := false
	l.Orders.Update(userKey, func(cur []domain.Order) []domain.Order {
		for i := range cur {
			if cur[i].ID == id {
				cur[i].Status = status
				found = true
				break
			}
		}
		return cur
	})
	return found
}

func (l *OrderLedger) List(userKey string) []domain.Order {
	out := l.Orders.Get(userKey)
	if out == nil {
		return []domain.Order{}
	}
	return out
}

// ListAll flattens every user's orders, users in first-order sequence.
func (l *OrderLedger) ListAll() []domain.OwnedOrder {
	out := []domain.OwnedOrder{}
	for _, k := range l.Orders.Keys() {
		for _, o := range l.Orders.Get(k) {
			out = append(out, domain.OwnedOrder{Owner: k, Order: o})
		}
	}
	return out
}
