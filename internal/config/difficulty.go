package config

import "github.com/vovakirdan/rocketberry/internal/core"

// Ramp makes obstacles spawn faster and fall faster as more of them spawn.
//
// Every obstacle spawn increments a counter. Once the counter exceeds
// RampAfter, the spawn interval drops by one (down to MinInterval), and
// whenever the new interval is a multiple of SpeedStepEvery the obstacle
// speed rises by one (up to MaxSpeed). The counter then starts over.
type Ramp struct {
	cfg      DifficultyConfig
	interval int
	speed    int
	since    int
}

// NewRamp creates a ramp at its initial difficulty.
func NewRamp(cfg DifficultyConfig) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns to the initial difficulty.
func (r *Ramp) Reset() {
	r.interval = r.cfg.InitialInterval
	r.speed = r.cfg.InitialSpeed
	r.since = 0
}

// Interval returns the current frames between obstacle spawns.
func (r *Ramp) Interval() int { return r.interval }

// Speed returns the current obstacle descent speed.
func (r *Ramp) Speed() int { return r.speed }

// SinceRamp returns spawns counted since the last ramp step.
func (r *Ramp) SinceRamp() int { return r.since }

// Spawned records one obstacle spawn and reports whether the ramp stepped.
func (r *Ramp) Spawned() bool {
	r.since++
	if r.since <= r.cfg.RampAfter {
		return false
	}
	r.since = 0

	if r.interval <= r.cfg.MinInterval {
		return false
	}
	r.interval--
	if r.cfg.SpeedStepEvery > 0 && r.interval%r.cfg.SpeedStepEvery == 0 && r.speed < r.cfg.MaxSpeed {
		r.speed++
	}
	return true
}

// Countdown returns the frames until the next spawn for a jitter value.
// roll is any non-negative random number; it is folded into
// [JitterMin, JitterMin+JitterSpan).
func (r *Ramp) Countdown(roll int) int {
	jitter := r.cfg.JitterMin
	if r.cfg.JitterSpan > 0 {
		jitter += core.Abs(roll) % r.cfg.JitterSpan
	}
	return r.interval + jitter
}
