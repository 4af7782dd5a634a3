package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmacia/internal/domain"
	"farmacia/internal/services"
	"farmacia/internal/store"
)

func TestLedgerSetStatus(t *testing.T) {
	l := services.NewOrderLedger(store.NewMemory[domain.Order]())
	l.Append("a@demo.cl", domain.Order{ID: 1, Status: domain.StatusPending})
	l.Append("b@demo.cl", domain.Order{ID: 2, Status: domain.StatusPending})

	assert.True(t, l.SetStatus("a@demo.cl", 1, domain.StatusReady))
	assert.Equal(t, domain.StatusReady, l.List("a@demo.cl")[0].Status)

	// orders are only found under their owner
	before := l.List("a@demo.cl")
	assert.False(t, l.SetStatus("a@demo.cl", 2, domain.StatusCanceled))
	assert.Equal(t, before, l.List("a@demo.cl"))
	assert.Equal(t, domain.StatusPending, l.List("b@demo.cl")[0].Status)

	assert.True(t, l.SetStatus("a@demo.cl", 1, "  "))
	assert.Equal(t, domain.StatusPending, l.List("a@demo.cl")[0].Status)
}

func TestLedgerListAllOrder(t *testing.T) {
	l := services.NewOrderLedger(store.NewMemory[domain.Order]())
	l.Append("b@demo.cl", domain.Order{ID: 10})
	l.Append("a@demo.cl", domain.Order{ID: 20})
	l.Append("b@demo.cl", domain.Order{ID: 30})

	all := l.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "b@demo.cl", all[0].Owner)
	assert.Equal(t, int64(10), all[0].ID)
	assert.Equal(t, int64(30), all[1].ID)
	assert.Equal(t, "a@demo.cl", all[2].Owner)
	assert.Empty(t, l.List("nobody"))
}

func TestAddressBook(t *testing.T) {
	b := services.NewAddressBook(store.NewMemory[domain.Address](), store.NewIDGen())
	a1 := b.Add("u", "  Calle Uno 1 ", " Maipú ", "  casa azul ")
	a2 := b.Add("u", "Calle Dos 2", "Macul", "")

	assert.Equal(t, "Calle Uno 1", a1.Street)
	assert.Equal(t, "Maipú", a1.Locality)
	assert.Equal(t, "casa azul", a1.Note)
	assert.Greater(t, a2.ID, a1.ID)
	assert.Equal(t, []domain.Address{a1, a2}, b.List("u"))

	b.RemoveAt("u", 7)
	b.RemoveAt("u", -1)
	assert.Len(t, b.List("u"), 2)

	b.RemoveAt("u", 0)
	assert.Equal(t, []domain.Address{a2}, b.List("u"))
	assert.Equal(t, []domain.Address{}, b.List("other"))
}
