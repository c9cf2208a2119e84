// Package tilt quantizes signed tilt samples into the nine velocity tiers
// that steer the player, and provides the readers that produce samples.
package tilt

import "github.com/vovakirdan/rocketberry/internal/core"

// Tier is one of nine discrete velocity buckets, ordered left to right.
type Tier int

const (
	StrongLeft Tier = iota - 4
	FastLeft
	MediumLeft
	SlowLeft
	Neutral
	SlowRight
	MediumRight
	FastRight
	StrongRight
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case StrongLeft:
		return "strong-left"
	case FastLeft:
		return "fast-left"
	case MediumLeft:
		return "medium-left"
	case SlowLeft:
		return "slow-left"
	case Neutral:
		return "neutral"
	case SlowRight:
		return "slow-right"
	case MediumRight:
		return "medium-right"
	case FastRight:
		return "fast-right"
	case StrongRight:
		return "strong-right"
	default:
		return "unknown"
	}
}

// Direction returns -1 for left tiers, 1 for right tiers and 0 for neutral.
func (t Tier) Direction() int {
	switch {
	case t < Neutral:
		return -1
	case t > Neutral:
		return 1
	default:
		return 0
	}
}

// Level returns the tier's distance from neutral, 0 through 4.
func (t Tier) Level() int {
	if t < 0 {
		return int(-t)
	}
	return int(t)
}

// Quantizer maps raw samples to tiers and velocities.
//
// Bounds are the inclusive upper magnitudes of the neutral, slow, medium
// and fast tiers; anything above Bounds[3] is strong. Speeds are the
// horizontal velocities of the slow, medium, fast and strong tiers.
// Classification is by magnitude, so left and right are symmetric and
// every sample maps to exactly one tier.
type Quantizer struct {
	Bounds [4]int
	Speeds [4]int
}

// DefaultQuantizer returns the stock thresholds and speeds.
func DefaultQuantizer() Quantizer {
	return Quantizer{
		Bounds: [4]int{125, 300, 600, 800},
		Speeds: [4]int{15, 20, 25, 30},
	}
}

// Tier classifies one sample.
func (q Quantizer) Tier(sample int) Tier {
	mag := core.Abs(sample)
	level := 4
	for i, b := range q.Bounds {
		if mag <= b {
			level = i
			break
		}
	}
	if sample < 0 {
		return Tier(-level)
	}
	return Tier(level)
}

// Speed returns the signed horizontal velocity for a tier.
func (q Quantizer) Speed(t Tier) int {
	l := t.Level()
	if l == 0 || l > 4 {
		return 0
	}
	return t.Direction() * q.Speeds[l-1]
}

// Velocity classifies a sample and returns its signed velocity.
func (q Quantizer) Velocity(sample int) int {
	return q.Speed(q.Tier(sample))
}

// Sample returns a representative raw value inside tier t, used by
// readers that synthesize tilt from discrete input.
func (q Quantizer) Sample(t Tier) int {
	l := core.Clamp(t.Level(), 0, 4)
	if l == 0 {
		return 0
	}
	lo := q.Bounds[l-1] + 1
	hi := lo + lo/4 // strong has no upper bound
	if l < 4 {
		hi = q.Bounds[l]
	}
	return t.Direction() * (lo + hi) / 2
}
