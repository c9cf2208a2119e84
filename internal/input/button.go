package input

import (
	"sync/atomic"
	"time"
)

// DefaultDebounce is the minimum spacing between accepted presses.
const DefaultDebounce = 150 * time.Millisecond

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Button turns raw press edges into debounced Press events.
//
// Edge must be called from one goroutine at a time (the producer).
// Presses and Dropped may be read from anywhere.
type Button struct {
	queue  *Queue
	window time.Duration
	now    Clock

	presses atomic.Uint64
	dropped atomic.Uint64

	last     time.Time
	accepted bool
}

// NewButton creates a producer feeding q. A nil clock uses time.Now and a
// negative window disables debouncing.
func NewButton(q *Queue, window time.Duration, now Clock) *Button {
	if now == nil {
		now = time.Now
	}
	if window < 0 {
		window = 0
	}
	return &Button{queue: q, window: window, now: now}
}

// Edge records one raw press edge. The press counter always increments;
// the edge is enqueued only if more than the debounce window has passed
// since the last accepted edge. Returns true if a Press was enqueued.
func (b *Button) Edge() bool {
	count := b.presses.Add(1)
	t := b.now()

	if b.accepted && t.Sub(b.last) <= b.window {
		return false
	}
	b.last = t
	b.accepted = true

	if !b.queue.Offer(Press{Count: count, At: t}) {
		b.dropped.Add(1)
		return false
	}
	return true
}

// Presses returns the number of raw edges seen so far.
func (b *Button) Presses() uint64 {
	return b.presses.Load()
}

// Dropped returns how many accepted presses were lost to a full queue.
func (b *Button) Dropped() uint64 {
	return b.dropped.Load()
}

// Window returns the debounce window.
func (b *Button) Window() time.Duration {
	return b.window
}
