package tilt

import (
	"sync"
	"sync/atomic"
)

// Reader returns one signed tilt sample. It must not block; the game calls
// it once per frame.
type Reader interface {
	ReadTilt() int
}

// Static always reports the same sample.
type Static int

// ReadTilt implements Reader.
func (s Static) ReadTilt() int { return int(s) }

// Script replays a fixed sequence of samples and then holds the last one.
// An empty script reads as neutral.
type Script struct {
	mu      sync.Mutex
	samples []int
	pos     int
}

// NewScript creates a Script over a copy of samples.
func NewScript(samples ...int) *Script {
	s := &Script{samples: make([]int, len(samples))}
	copy(s.samples, samples)
	return s
}

// ReadTilt implements Reader.
func (s *Script) ReadTilt() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.samples) == 0 {
		return 0
	}
	v := s.samples[s.pos]
	if s.pos < len(s.samples)-1 {
		s.pos++
	}
	return v
}

// Keyboard synthesizes tilt from discrete key presses: each Left or Right
// moves one tier in that direction, up to the strong tiers, and Center
// returns to neutral. Key handlers run on the terminal's event goroutine
// while the game reads on its own, so the tier is held atomically.
type Keyboard struct {
	q    Quantizer
	tier atomic.Int64
}

// NewKeyboard creates a neutral keyboard reader using q to pick samples.
func NewKeyboard(q Quantizer) *Keyboard {
	return &Keyboard{q: q}
}

// Left tilts one tier further left.
func (k *Keyboard) Left() { k.shift(-1) }

// Right tilts one tier further right.
func (k *Keyboard) Right() { k.shift(1) }

// Center returns to neutral.
func (k *Keyboard) Center() { k.tier.Store(int64(Neutral)) }

// Tier returns the current tier.
func (k *Keyboard) Tier() Tier { return Tier(k.tier.Load()) }

func (k *Keyboard) shift(d int64) {
	for {
		old := k.tier.Load()
		next := old + d
		if next < int64(StrongLeft) || next > int64(StrongRight) {
			return
		}
		if k.tier.CompareAndSwap(old, next) {
			return
		}
	}
}

// ReadTilt implements Reader.
func (k *Keyboard) ReadTilt() int {
	return k.q.Sample(k.Tier())
}
