package entity

import (
	"errors"

	"github.com/vovakirdan/rocketberry/internal/core"
)

// ErrPoolFull is returned by Spawn when the pool is at capacity.
// Callers skip the spawn; it is never fatal.
var ErrPoolFull = errors.New("entity: pool full")

// Pool is a fixed-capacity, unordered collection of entities.
// Slots [0, Len()) are live; removal moves the last entity into the hole,
// so order is not preserved across removals.
type Pool struct {
	slots []*Entity
	count int
}

// NewPool creates an empty pool. A negative capacity is treated as zero.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{slots: make([]*Entity, capacity)}
}

// Cap returns the fixed capacity.
func (p *Pool) Cap() int { return len(p.slots) }

// Len returns the number of live entries.
func (p *Pool) Len() int { return p.count }

// Full reports whether a Spawn would fail.
func (p *Pool) Full() bool { return p.count >= len(p.slots) }

// At returns the entity in slot i, or nil when i is not a live index.
func (p *Pool) At(i int) *Entity {
	if i < 0 || i >= p.count {
		return nil
	}
	return p.slots[i]
}

// Spawn appends e. It returns ErrPoolFull, leaving the pool unchanged,
// when the pool is at capacity.
func (p *Pool) Spawn(e *Entity) error {
	if p.count >= len(p.slots) {
		return ErrPoolFull
	}
	p.slots[p.count] = e
	p.count++
	return nil
}

// Remove deletes slot i by moving the last entry into it. Indices above
// the old last position are invalidated. Out-of-range indices are ignored.
func (p *Pool) Remove(i int) {
	if i < 0 || i >= p.count {
		return
	}
	last := p.count - 1
	p.slots[i] = p.slots[last]
	p.slots[last] = nil
	p.count = last
}

// Sweep calls fn for every live entity and removes those for which it
// returns true. After a removal the entity swapped into the hole is
// visited next, so every entity is seen exactly once per sweep.
func (p *Pool) Sweep(fn func(e *Entity) (remove bool)) {
	for i := 0; i < p.count; {
		if fn(p.slots[i]) {
			p.Remove(i)
			continue
		}
		i++
	}
}

// Each calls fn for every live entity in current slot order.
func (p *Pool) Each(fn func(i int, e *Entity)) {
	for i := 0; i < p.count; i++ {
		fn(i, p.slots[i])
	}
}

// Clear drops every entity.
func (p *Pool) Clear() {
	for i := 0; i < p.count; i++ {
		p.slots[i] = nil
	}
	p.count = 0
}

// Detect returns the first slot, in current pool order, whose entity is
// alive and whose collider overlaps query on both axes (edges inclusive).
//
// Pool order changes with every swap-remove, so when several entities
// overlap the query, which one is reported depends on the spawn and
// removal history. Callers may only rely on "a hit occurred".
func Detect(p *Pool, query core.Rect) (int, bool) {
	for i := 0; i < p.count; i++ {
		e := p.slots[i]
		if e.Alive && e.Collider.Overlaps(query) {
			return i, true
		}
	}
	return -1, false
}
