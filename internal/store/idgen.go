package store

import (
	"sync"
	"time"
)

// IDGen hands out wall-clock millisecond identifiers. When two calls land
// in the same millisecond (or the clock steps back) the previous value is
// bumped by one, so ids are strictly increasing for the process lifetime.
type IDGen struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGen() *IDGen { return &IDGen{now: time.Now} }

// NewIDGenWithClock is used by tests that need a frozen clock.
func NewIDGenWithClock(now func() time.Time) *IDGen { return &IDGen{now: now} }

func (g *IDGen) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
