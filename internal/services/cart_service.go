package services

import (
	"errors"
	"fmt"

	"farmacia/internal/domain"
	"farmacia/internal/repos"
	"farmacia/internal/store"
)

// ProductFinder is the read side of the catalog the cart needs.
type ProductFinder interface {
	Get(id int64) (domain.Product, error)
}

type CartService struct {
	Lines store.Keyed[domain.CartLine]
	Prods ProductFinder
}

func NewCartService(lines store.Keyed[domain.CartLine], prods ProductFinder) *CartService {
	return &CartService{Lines: lines, Prods: prods}
}

// Add merges qty into the line for productID, or appends a new line with
// the product's current name, price and discount. A line saturates at
// domain.MaxQty units.
func (s *CartService) Add(userKey string, productID int64, qty int) error {
	qty = clampQty(qty)
	p, err := s.Prods.Get(productID)
	if errors.Is(err, repos.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("load product %d: %w", productID, err)
	}
	s.Lines.Update(userKey, func(lines []domain.CartLine) []domain.CartLine {
		for i := range lines {
			if lines[i].ProductID == p.ID {
				lines[i].Qty = clampQty(lines[i].Qty + qty)
				return lines
			}
		}
		return append(lines, domain.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       qty,
			Discount:  p.Discount,
		})
	})
	return nil
}

// RemoveAt drops the line at pos. Out of range is a no-op.
func (s *CartService) RemoveAt(userKey string, pos int) {
	s.Lines.Update(userKey, func(lines []domain.CartLine) []domain.CartLine {
		return removeAt(lines, pos)
	})
}

func (s *CartService) Clear(userKey string) {
	s.Lines.Put(userKey, []domain.CartLine{})
}

type CartRow struct {
	domain.CartLine
	UnitPrice int
	Subtotal  int
}

type CartView struct {
	Items []CartRow
	Total int
}

func (s *CartService) View(userKey string) CartView {
	lines := s.Items(userKey)
	cv := CartView{Items: make([]CartRow, 0, len(lines))}
	for _, l := range lines {
		cv.Items = append(cv.Items, CartRow{CartLine: l, UnitPrice: UnitPrice(l.Price, l.Discount), Subtotal: LineTotal(l)})
	}
	cv.Total = CartTotal(lines)
	return cv
}

// Items returns the raw lines, empty (never nil) when there are none.
func (s *CartService) Items(userKey string) []domain.CartLine {
	lines := s.Lines.Get(userKey)
	if lines == nil {
		return []domain.CartLine{}
	}
	return lines
}

func removeAt[T any](items []T, pos int) []T {
	if pos < 0 || pos >= len(items) {
		return items
	}
	return append(items[:pos], items[pos+1:]...)
}
