// Package input bridges the asynchronous push-button to the frame loop.
//
// A Button is the producer: it runs wherever raw edges arrive (a terminal
// event goroutine, a key handler), applies the debounce window and pushes
// Press events into a Queue. The simulation is the single consumer and
// polls the Queue once per frame without blocking.
package input

import "time"

// DefaultQueueSize is the default queue capacity.
const DefaultQueueSize = 16

// Press is one accepted button press.
type Press struct {
	// Count is the press counter at the time of the edge. It increases
	// monotonically, counting every raw edge including debounced ones.
	Count uint64
	At    time.Time
}

// Source is the consumer side: a non-blocking poll returning at most one event.
type Source interface {
	Poll() (Press, bool)
}

// Drainer is implemented by sources that can discard buffered events.
type Drainer interface {
	Drain()
}

// Queue is a bounded single-producer single-consumer event queue.
// Neither side ever blocks; a full queue drops the new event.
type Queue struct {
	events chan Press
}

// NewQueue creates a queue holding up to size events.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = DefaultQueueSize
	}
	return &Queue{events: make(chan Press, size)}
}

// Offer enqueues p. It returns false if the queue was full and p was dropped.
func (q *Queue) Offer(p Press) bool {
	select {
	case q.events <- p:
		return true
	default:
		return false
	}
}

// Poll dequeues one event, returning false immediately when empty.
func (q *Queue) Poll() (Press, bool) {
	select {
	case p := <-q.events:
		return p, true
	default:
		return Press{}, false
	}
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain discards every buffered event.
func (q *Queue) Drain() {
	for {
		if _, ok := q.Poll(); !ok {
			return
		}
	}
}
