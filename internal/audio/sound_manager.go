// Package audio turns game events into short synthesized sound cues.
// Audio is optional: when the speaker cannot be opened every call is a
// no-op and the game runs silently.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rocketberry/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueLaser
	CueExplosion
	CueEnemyDown
	CueEscape
	CueHit
	CueGameOver
	CueStart
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueLaser:
		return "laser"
	case CueExplosion:
		return "explosion"
	case CueEnemyDown:
		return "enemy-down"
	case CueEscape:
		return "escape"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "game-over"
	case CueStart:
		return "start"
	default:
		return "none"
	}
}

// CueFor maps a game event to its sound.
func CueFor(k game.EventKind) Cue {
	switch k {
	case game.EventShot:
		return CueLaser
	case game.EventObstacleDestroyed:
		return CueExplosion
	case game.EventEnemyDestroyed:
		return CueEnemyDown
	case game.EventEnemyEscaped:
		return CueEscape
	case game.EventPlayerHit:
		return CueHit
	case game.EventGameOver:
		return CueGameOver
	case game.EventStarted, game.EventReset:
		return CueStart
	default:
		return CueNone
	}
}

// Streamer builds a fresh streamer for the cue, or nil for CueNone.
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueLaser:
		return NewToneGenerator(sr, 1800, 600, 90*time.Millisecond, 12)
	case CueExplosion:
		return NewNoiseGenerator(sr, 250*time.Millisecond, 70)
	case CueEnemyDown:
		return NewNoiseGenerator(sr, 300*time.Millisecond, 110)
	case CueEscape:
		return NewToneGenerator(sr, 140, 90, 200*time.Millisecond, 4)
	case CueHit:
		return NewToneGenerator(sr, 400, 80, 350*time.Millisecond, 3)
	case CueGameOver:
		return beep.Seq(
			NewToneGenerator(sr, 523, 523, 150*time.Millisecond, 2),
			NewToneGenerator(sr, 392, 392, 150*time.Millisecond, 2),
			NewToneGenerator(sr, 262, 262, 300*time.Millisecond, 2),
		)
	case CueStart:
		return beep.Seq(
			NewToneGenerator(sr, 440, 440, 80*time.Millisecond, 2),
			NewToneGenerator(sr, 880, 880, 120*time.Millisecond, 2),
		)
	default:
		return nil
	}
}

// SoundManager owns the speaker and mixes cues into it.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
	played      map[Cue]int
}

// NewSoundManager creates a sound manager. A muted manager never opens
// the speaker.
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		muted:  muted,
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker. On failure the manager stays silent and
// the game can carry on.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play starts a cue. Cues requested while silent are still counted.
func (sm *SoundManager) Play(c Cue) {
	if c == CueNone {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[c]++
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(c.Streamer(sampleRate))
	speaker.Unlock()
}

// Handle plays the cue for every event of a step, at most once per cue.
func (sm *SoundManager) Handle(events []game.Event) {
	var seen [CueStart + 1]bool
	for _, ev := range events {
		c := CueFor(ev.Kind)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		sm.Play(c)
	}
}

// Played returns how many times c was requested.
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[c]
}

// Active reports whether the speaker is open.
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
