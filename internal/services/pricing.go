package services

import "farmacia/internal/domain"

// roundDiv is a/b rounded half up, for a >= 0 and b > 0.
func roundDiv(a, b int) int { return (2*a + b) / (2 * b) }

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func clampPrice(p int) int { return min(max(p, 0), domain.MaxPrice) }

func clampQty(q int) int { return min(max(q, 1), domain.MaxQty) }

// UnitPrice applies a percent discount to price, rounded to the nearest unit.
// price is clamped to 0..domain.MaxPrice.
func UnitPrice(price, discount int) int {
	return roundDiv(clampPrice(price)*(100-clampPercent(discount)), 100)
}

// LineTotal discounts and rounds the unit price before multiplying by qty.
func LineTotal(l domain.CartLine) int {
	return UnitPrice(l.Price, l.Discount) * clampQty(l.Qty)
}

func CartTotal(lines []domain.CartLine) int {
	total := 0
	for _, l := range lines {
		total += LineTotal(l)
	}
	return total
}

// Points is one loyalty point per 1000 spent, rounded half up.
func Points(total int) int {
	if total <= 0 {
		return 0
	}
	return roundDiv(total, 1000)
}
