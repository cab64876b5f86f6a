package cache

import (
	"sync"

	"course-server/entities"
)

// ActivityBuffer keeps the most recent catalog events in memory. Once the
// capacity is reached the oldest event is dropped for each new one.
type ActivityBuffer struct {
	mu       sync.RWMutex
	events   []entities.ActivityEvent
	capacity int
	recorded uint64 // total events ever recorded, including evicted ones
}

func NewActivityBuffer(capacity int) *ActivityBuffer {
	if capacity <= 0 {
		capacity = 256
	}
	return &ActivityBuffer{
		events:   make([]entities.ActivityEvent, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a new event, evicting the oldest one when full.
func (b *ActivityBuffer) Add(event entities.ActivityEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == b.capacity {
		copy(b.events, b.events[1:])
		b.events[len(b.events)-1] = event
	} else {
		b.events = append(b.events, event)
	}
	b.recorded++
}

// Recent returns a copy of the buffered events, oldest first.
func (b *ActivityBuffer) Recent() []entities.ActivityEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entities.ActivityEvent, len(b.events))
	copy(out, b.events)
	return out
}

// Stats returns statistics about the current buffer contents.
func (b *ActivityBuffer) Stats() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	byKind := make(map[string]int)
	for _, event := range b.events {
		byKind[string(event.Kind)]++
	}

	return map[string]interface{}{
		"buffered":       len(b.events),
		"capacity":       b.capacity,
		"total_recorded": b.recorded,
		"by_kind":        byKind,
	}
}

// Clear drops all buffered events.
func (b *ActivityBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = b.events[:0]
}
