// Package headless runs a session without a display: a fixed number of
// frames, scripted button presses and a constant tilt. Runs are fully
// deterministic for a given seed and script.
package headless

import (
	"fmt"
	"image/png"
	"io"
	"time"

	"github.com/vovakirdan/rocketberry/internal/config"
	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/font"
	"github.com/vovakirdan/rocketberry/internal/game"
	"github.com/vovakirdan/rocketberry/internal/input"
	"github.com/vovakirdan/rocketberry/internal/tilt"
)

// Options script a run.
type Options struct {
	Frames    int
	FireEvery int // press the button every N frames; 0 never presses
	Tilt      int // raw sensor sample held for the whole run
	// Observe, if set, sees every step's result.
	Observe func(game.StepResult)
}

// Summary totals a run.
type Summary struct {
	Frames      int
	Phase       game.Phase
	Score       int
	HighScore   int
	Presses     uint64
	Shots       int
	Obstacles   int // destroyed
	Enemies     int // destroyed
	Escaped     int
	Rounds      int // game overs
	LiveHazards int
	LiveLasers  int
}

// String renders the summary as one line.
func (s Summary) String() string {
	return fmt.Sprintf("frames=%d phase=%s score=%d high=%d presses=%d shots=%d obstacles=%d enemies=%d escaped=%d rounds=%d hazards=%d lasers=%d",
		s.Frames, s.Phase, s.Score, s.HighScore, s.Presses, s.Shots, s.Obstacles, s.Enemies,
		s.Escaped, s.Rounds, s.LiveHazards, s.LiveLasers)
}

// frameClock advances by one frame period per reading, so the button's
// debounce window is measured in simulated time.
type frameClock struct {
	t    time.Time
	step time.Duration
}

func (c *frameClock) now() time.Time { return c.t }

// Sim is a scripted session.
type Sim struct {
	opts    Options
	session *game.Session
	button  *input.Button
	clock   *frameClock
}

// New builds a simulation from cfg and the runtime parameters. The start
// screen is dismissed by the first scripted press.
func New(cfg config.GameConfig, rc core.RuntimeConfig, opts Options) (*Sim, error) {
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 30
	}
	clock := &frameClock{t: time.Unix(0, 0), step: time.Second / time.Duration(tickRate)}
	q := input.NewQueue(cfg.Input.QueueSize)

	sess, err := game.New(cfg, rc, game.Deps{
		Font:  font.Default(),
		Tilt:  tilt.Static(opts.Tilt),
		Input: q,
	})
	if err != nil {
		return nil, err
	}
	return &Sim{
		opts:    opts,
		session: sess,
		button:  input.NewButton(q, cfg.Input.Debounce, clock.now),
		clock:   clock,
	}, nil
}

// Session returns the simulated session.
func (s *Sim) Session() *game.Session { return s.session }

// Run steps the session for the configured number of frames.
func (s *Sim) Run() Summary {
	var sum Summary
	for i := 0; i < s.opts.Frames; i++ {
		if s.opts.FireEvery > 0 && i%s.opts.FireEvery == 0 {
			s.button.Edge()
		}
		res := s.session.Step()
		s.clock.t = s.clock.t.Add(s.clock.step)

		for _, ev := range res.Events {
			switch ev.Kind {
			case game.EventShot:
				sum.Shots++
			case game.EventObstacleDestroyed:
				sum.Obstacles++
			case game.EventEnemyDestroyed:
				sum.Enemies++
			case game.EventEnemyEscaped:
				sum.Escaped++
			case game.EventGameOver:
				sum.Rounds++
			}
		}
		if s.opts.Observe != nil {
			s.opts.Observe(res)
		}
		sum.Frames++
	}

	sum.Phase = s.session.Phase()
	sum.Score = s.session.Score()
	sum.HighScore = s.session.HighScore()
	sum.Presses = s.button.Presses()
	o, e, p := s.session.Population()
	sum.LiveHazards = o + e
	sum.LiveLasers = p
	return sum
}

// WritePNG encodes the displayed frame.
func (s *Sim) WritePNG(w io.Writer) error {
	return png.Encode(w, s.session.Surface().Snapshot())
}
