// Package game implements the RocketBerry simulation loop: a session that
// owns the entity pools, score and difficulty ramp, advances them one frame
// per Step and renders the frame onto a gfx.Surface.
//
// The session is single-threaded. Its only inputs are the tilt Reader and
// the button Source, both polled without blocking once per frame.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/rocketberry/internal/assets"
	"github.com/vovakirdan/rocketberry/internal/config"
	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/entity"
	"github.com/vovakirdan/rocketberry/internal/gfx"
	"github.com/vovakirdan/rocketberry/internal/input"
	"github.com/vovakirdan/rocketberry/internal/tilt"
)

// Deps are the session's collaborators. Nil fields get defaults: a surface
// sized from the runtime config, no text, neutral tilt, no presses, the
// embedded sprites and an RNG seeded from the runtime config.
type Deps struct {
	Surface *gfx.Surface
	Font    gfx.Font
	Tilt    tilt.Reader
	Input   input.Source
	Sprites *assets.Animations
	Rand    *rand.Rand
}

// Session is the game world.
type Session struct {
	cfg    config.GameConfig
	colors config.Colors
	quant  tilt.Quantizer
	ramp   *config.Ramp
	rng    *rand.Rand

	surface *gfx.Surface
	font    gfx.Font
	tilt    tilt.Reader
	input   input.Source
	anim    *assets.Animations

	phase       Phase
	player      *entity.Entity
	obstacles   *entity.Pool
	enemies     *entity.Pool
	projectiles *entity.Pool

	score     int
	highScore int
	countdown int  // frames until the next obstacle spawn
	glitch    bool // flash armed for this frame's render
	frame     uint64
	nextID    uint64

	leftBorder  int
	rightBorder int

	events []Event
}

// New creates a session on the start screen.
func New(cfg config.GameConfig, rc core.RuntimeConfig, d Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	colors, err := cfg.Colors.Resolve()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if d.Sprites == nil {
		d.Sprites, err = assets.LoadAnimations()
		if err != nil {
			return nil, fmt.Errorf("game: loading sprites: %w", err)
		}
	}
	if len(d.Sprites.Player) == 0 || d.Sprites.ObstacleTypes() == 0 ||
		len(d.Sprites.EnemyWalk) == 0 || d.Sprites.Projectile == nil {
		return nil, errors.New("game: sprite tables are incomplete")
	}
	if d.Surface == nil {
		w, h := rc.ScreenW, rc.ScreenH
		if w <= 0 || h <= 0 {
			w, h = cfg.Screen.Width, cfg.Screen.Height
		}
		d.Surface = gfx.NewSurface(w, h, cfg.Screen.Buffers)
	}
	if d.Tilt == nil {
		d.Tilt = tilt.Static(0)
	}
	if d.Input == nil {
		d.Input = input.NewQueue(cfg.Input.QueueSize)
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(rc.Seed))
	}

	s := &Session{
		cfg:         cfg,
		colors:      colors,
		quant:       cfg.Tilt.Quantizer(),
		ramp:        config.NewRamp(cfg.Difficulty),
		rng:         d.Rand,
		surface:     d.Surface,
		font:        d.Font,
		tilt:        d.Tilt,
		input:       d.Input,
		anim:        d.Sprites,
		phase:       PhaseStart,
		obstacles:   entity.NewPool(cfg.Obstacles.Capacity),
		enemies:     entity.NewPool(cfg.Enemies.Capacity),
		projectiles: entity.NewPool(cfg.Projectile.Cap),
	}

	// Obstacles only fall between positions the player can reach.
	playerW := d.Sprites.Player[0].Width() * cfg.Screen.Scale
	s.leftBorder = playerW
	s.rightBorder = s.surface.Width() - playerW*2

	s.player = entity.New(entity.KindPlayer, cfg.Player.StartX, cfg.Player.StartY,
		d.Sprites.Player[0], cfg.Screen.Scale, cfg.Player.Inset)
	s.player.ID = s.newID()
	return s, nil
}

// Step runs one iteration of the loop for the current phase.
func (s *Session) Step() StepResult {
	s.events = nil
	s.frame++

	switch s.phase {
	case PhaseStart:
		s.stepStart()
	case PhasePlaying:
		s.stepPlaying()
	case PhaseGameOver:
		s.stepGameOver()
	}

	return StepResult{
		Phase:     s.phase,
		Score:     s.score,
		HighScore: s.highScore,
		Frame:     s.frame,
		Events:    s.events,
	}
}

// stepStart shows the title screen; a press starts the first round.
func (s *Session) stepStart() {
	s.renderStart()
	if _, ok := s.input.Poll(); ok {
		s.phase = PhasePlaying
		s.emit(EventStarted, 0)
	}
}

// stepGameOver shows the overlay over an empty playfield; entities stay
// frozen and hidden. A press resets the session and skips the rest of the
// iteration.
func (s *Session) stepGameOver() {
	if _, ok := s.input.Poll(); ok {
		s.Reset()
		s.phase = PhasePlaying
		s.emit(EventReset, 0)
		return
	}
	s.renderPlaying(false)
}

// Reset clears every pool, puts the player back at the start, folds the
// score into the high score and restarts the difficulty ramp. Presses
// still queued are discarded. The phase is left unchanged.
func (s *Session) Reset() {
	s.obstacles.Clear()
	s.enemies.Clear()
	s.projectiles.Clear()

	p := s.player
	p.X, p.Y = s.cfg.Player.StartX, s.cfg.Player.StartY
	p.VX, p.VY = 0, 0
	p.Alive = true
	p.Frame = 0
	p.Sprite = s.anim.Player[0]
	p.ResetCollider(s.cfg.Screen.Scale)

	s.highScore = core.Max(s.highScore, s.score)
	s.score = 0
	s.ramp.Reset()
	s.countdown = 0
	s.glitch = false

	if d, ok := s.input.(input.Drainer); ok {
		d.Drain()
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current round's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score folded in so far.
func (s *Session) HighScore() int { return s.highScore }

// Frame returns the number of steps taken.
func (s *Session) Frame() uint64 { return s.frame }

// Surface returns the surface the session renders into.
func (s *Session) Surface() *gfx.Surface { return s.surface }

// Ramp exposes the difficulty state.
func (s *Session) Ramp() *config.Ramp { return s.ramp }

// Population returns the live entity counts.
func (s *Session) Population() (obstacles, enemies, projectiles int) {
	return s.obstacles.Len(), s.enemies.Len(), s.projectiles.Len()
}

func (s *Session) emit(kind EventKind, value int) {
	s.events = append(s.events, Event{Kind: kind, Value: value})
}

func (s *Session) newID() uint64 {
	s.nextID++
	return s.nextID
}
