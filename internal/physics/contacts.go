// internal/physics/contacts.go
package physics

import "go-space-shooter/internal/types"

// ContactTracker turns per-tick overlap observations into begin-contact
// events, so a pair that stays overlapped for many ticks is reported once.
type ContactTracker struct {
	previous map[types.Pair]struct{}
	current  map[types.Pair]struct{}
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		previous: make(map[types.Pair]struct{}),
		current:  make(map[types.Pair]struct{}),
	}
}

// Begin records that the pair overlaps this tick. It returns true only on
// the first observation of a new overlap.
func (c *ContactTracker) Begin(p types.Pair) bool {
	if _, ok := c.current[p]; ok {
		return false
	}
	c.current[p] = struct{}{}
	_, wasTouching := c.previous[p]
	return !wasTouching
}

// EndTick forgets pairs that were not observed during the tick.
func (c *ContactTracker) EndTick() {
	c.previous = c.current
	c.current = make(map[types.Pair]struct{}, len(c.previous))
}

// Forget drops every pair involving id.
func (c *ContactTracker) Forget(id types.EntityID) {
	for p := range c.previous {
		if p.A == id || p.B == id {
			delete(c.previous, p)
		}
	}
	for p := range c.current {
		if p.A == id || p.B == id {
			delete(c.current, p)
		}
	}
}
