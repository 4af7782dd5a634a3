package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmacia/internal/store"
)

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := store.NewMemory[int]()
	m.Put("a", []int{1, 2})

	got := m.Get("a")
	got[0] = 99

	assert.Equal(t, []int{1, 2}, m.Get("a"))
	assert.Nil(t, m.Get("missing"))
}

func TestMemoryKeysInInsertionOrder(t *testing.T) {
	m := store.NewMemory[string]()
	m.Put("b", []string{"x"})
	m.Put("a", []string{"y"})
	m.Put("b", []string{"z"})
	m.Put("empty", nil)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
}

func TestMemoryClearedKeyStaysRegistered(t *testing.T) {
	m := store.NewMemory[int]()
	m.Put("a", []int{1})
	m.Put("a", []int{})

	assert.Equal(t, []string{"a"}, m.Keys())
	assert.Empty(t, m.Get("a"))
}

func TestMemoryUpdateIsAtomic(t *testing.T) {
	m := store.NewMemory[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Update("k", func(cur []int) []int { return append(cur, 1) })
		}()
	}
	wg.Wait()
	assert.Len(t, m.Get("k"), 50)
}

func TestIDGenStrictlyIncreasingOnFrozenClock(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := store.NewIDGenWithClock(func() time.Time { return frozen })

	first := g.Next()
	require.Equal(t, frozen.UnixMilli(), first)
	prev := first
	for i := 0; i < 100; i++ {
		id := g.Next()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestIDGenClockStepsBack(t *testing.T) {
	now := time.UnixMilli(2_000)
	g := store.NewIDGenWithClock(func() time.Time { return now })
	a := g.Next()
	now = time.UnixMilli(1_000)
	b := g.Next()
	assert.Equal(t, a+1, b)
}

func TestIDGenConcurrentUnique(t *testing.T) {
	g := store.NewIDGen()
	var mu sync.Mutex
	seen := map[int64]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 200)
}
