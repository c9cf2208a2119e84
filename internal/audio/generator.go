package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator plays a sine that glides from one frequency to another
// under an exponential decay envelope.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	decay    float64
	length   int
	pos      int
	phase    float64
}

// NewToneGenerator creates a tone gliding from..to over d.
func NewToneGenerator(sr beep.SampleRate, from, to float64, d time.Duration, decay float64) *ToneGenerator {
	n := sr.N(d)
	if n < 1 {
		n = 1
	}
	return &ToneGenerator{sr: sr, from: from, to: to, decay: decay, length: n}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Exp(-t*g.decay) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator produces a decaying burst of noise over a low rumble,
// used for explosions. The seed is fixed so a cue always sounds the same.
type NoiseGenerator struct {
	sr     beep.SampleRate
	length int
	pos    int
	seed   int64
	rumble float64
}

// NewNoiseGenerator creates a burst lasting d with a rumble at freq Hz.
func NewNoiseGenerator(sr beep.SampleRate, d time.Duration, freq float64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, length: sr.N(d), seed: 0x5eed, rumble: freq}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*g.rumble*t)

		sample := envelope * (0.2*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
