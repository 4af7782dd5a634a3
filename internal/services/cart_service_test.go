package services_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmacia/internal/domain"
	"farmacia/internal/repos"
	"farmacia/internal/services"
	"farmacia/internal/store"
)

type fakeCatalog map[int64]domain.Product

func (f fakeCatalog) Get(id int64) (domain.Product, error) {
	p, ok := f[id]
	if !ok {
		return domain.Product{}, repos.ErrNotFound
	}
	return p, nil
}

type brokenCatalog struct{}

func (brokenCatalog) Get(int64) (domain.Product, error) { return domain.Product{}, errors.New("db down") }

func demoCatalog() fakeCatalog {
	return fakeCatalog{
		1: {ID: 1, Name: "Paracetamol 500mg", Price: 1990, Stock: 35, Discount: 10, Active: true},
		2: {ID: 2, Name: "Ibuprofeno 400mg", Price: 2990, Stock: 22, Active: true},
	}
}

func TestCartAddMergesByProduct(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())

	require.NoError(t, cart.Add("u", 1, 2))
	require.NoError(t, cart.Add("u", 2, 1))
	require.NoError(t, cart.Add("u", 1, 5))

	items := cart.Items("u")
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 7, items[0].Qty)
	assert.Equal(t, 10, items[0].Discount)
	assert.Equal(t, int64(2), items[1].ProductID)
}

func TestCartAddQuantityDefaultsToOne(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())

	require.NoError(t, cart.Add("u", 2, 0))
	require.NoError(t, cart.Add("u", 2, -4))
	assert.Equal(t, 2, cart.Items("u")[0].Qty)
}

func TestCartAddUnknownProduct(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())

	assert.ErrorIs(t, cart.Add("u", 99, 1), services.ErrProductNotFound)
	assert.Empty(t, cart.Items("u"))

	broken := services.NewCartService(store.NewMemory[domain.CartLine](), brokenCatalog{})
	err := broken.Add("u", 1, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrProductNotFound)
}

func TestCartRemoveAtOutOfRangeIsNoop(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())
	require.NoError(t, cart.Add("u", 1, 1))
	require.NoError(t, cart.Add("u", 2, 1))
	before := cart.Items("u")

	for _, pos := range []int{-1, 2, 100} {
		cart.RemoveAt("u", pos)
		assert.Equal(t, before, cart.Items("u"), "pos %d", pos)
	}
	cart.RemoveAt("nobody", 0)
	assert.Empty(t, cart.Items("nobody"))

	cart.RemoveAt("u", 0)
	items := cart.Items("u")
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestCartViewTotals(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())
	assert.Empty(t, cart.View("u").Items)

	require.NoError(t, cart.Add("u", 1, 2))
	require.NoError(t, cart.Add("u", 2, 1))

	cv := cart.View("u")
	require.Len(t, cv.Items, 2)
	assert.Equal(t, 1791, cv.Items[0].UnitPrice)
	assert.Equal(t, 3582, cv.Items[0].Subtotal)
	assert.Equal(t, 6572, cv.Total)
}

func TestCartQuantitySaturates(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())

	require.NoError(t, cart.Add("u", 1, 40))
	require.NoError(t, cart.Add("u", 1, 40))
	require.NoError(t, cart.Add("u", 2, math.MaxInt))
	require.NoError(t, cart.Add("u", 2, math.MaxInt))

	items := cart.Items("u")
	require.Len(t, items, 2)
	assert.Equal(t, domain.MaxQty, items[0].Qty)
	assert.Equal(t, domain.MaxQty, items[1].Qty)

	cv := cart.View("u")
	assert.Equal(t, 1791*50+2990*50, cv.Total)
	assert.Positive(t, services.Points(cv.Total))
}

func TestLineTotalNeverOverflows(t *testing.T) {
	huge := domain.CartLine{Price: math.MaxInt, Qty: math.MaxInt}
	assert.Equal(t, domain.MaxPrice, services.UnitPrice(math.MaxInt, 0))
	assert.Equal(t, domain.MaxPrice*domain.MaxQty, services.LineTotal(huge))

	total := services.CartTotal([]domain.CartLine{huge, huge, {Price: -5, Qty: -5}})
	assert.Equal(t, 2*domain.MaxPrice*domain.MaxQty, total)
}

func TestCartClear(t *testing.T) {
	cart := services.NewCartService(store.NewMemory[domain.CartLine](), demoCatalog())
	require.NoError(t, cart.Add("u", 1, 1))
	cart.Clear("u")
	assert.Equal(t, []domain.CartLine{}, cart.Items("u"))
}
