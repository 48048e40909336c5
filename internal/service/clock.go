package service

import (
	"sync"
	"time"
)

// Clock yields the current time for ids and timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time { return time.Now() }

// IDAllocator mints recipe ids
type IDAllocator interface {
	Next() int64
}

// ClockIDAllocator issues millisecond timestamps, bumped past the last
// issued id so that ids are strictly increasing within a process even when
// the clock stalls or steps backwards.
type ClockIDAllocator struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// NewClockIDAllocator creates an allocator reading clock
func NewClockIDAllocator(clock Clock) *ClockIDAllocator {
	return &ClockIDAllocator{clock: clock}
}

// Next returns a new id
func (a *ClockIDAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.clock.Now().UnixMilli()
	if id <= a.last {
		id = a.last + 1
	}
	a.last = id
	return id
}
