// Package store holds the per-identity collections (carts, addresses,
// orders) that live only for the lifetime of the process.
package store

import (
	"slices"
	"sync"
)

// Keyed maps an identity key to an ordered collection.
type Keyed[T any] interface {
	// Get returns a copy of the collection for key (nil if none).
	Get(key string) []T
	// Put replaces the collection for key.
	Put(key string, items []T)
	// Update runs fn on a copy of the collection and stores the result.
	// No other Get/Put/Update on the store interleaves with fn.
	Update(key string, fn func([]T) []T)
	// Keys lists keys in the order they were first stored.
	Keys() []string
}

type Memory[T any] struct {
	mu   sync.Mutex
	keys []string
	data map[string][]T
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{data: map[string][]T{}}
}

func (m *Memory[T]) Get(key string) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.data[key])
}

func (m *Memory[T]) Put(key string, items []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(key, slices.Clone(items))
}

func (m *Memory[T]) Update(key string, fn func([]T) []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(key, fn(slices.Clone(m.data[key])))
}

func (m *Memory[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.keys)
}

// set must be called with mu held. A key that never held anything is not
// registered until it gets a non-empty collection.
func (m *Memory[T]) set(key string, items []T) {
	if _, ok := m.data[key]; !ok {
		if len(items) == 0 {
			return
		}
		m.keys = append(m.keys, key)
	}
	m.data[key] = items
}
