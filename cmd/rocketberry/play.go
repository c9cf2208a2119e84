package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocketberry/internal/audio"
	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/font"
	"github.com/vovakirdan/rocketberry/internal/game"
	"github.com/vovakirdan/rocketberry/internal/input"
	"github.com/vovakirdan/rocketberry/internal/registry"
	"github.com/vovakirdan/rocketberry/internal/tilt"
)

var (
	flagBackend string
	flagMute    bool
)

// Smallest terminal that still shows a recognizable playfield.
const minCols, minRows = 40, 15

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on an interactive terminal backend.

Controls:
  Space/Enter   - Fire (the push-button)
  Left/A        - Tilt one step further left
  Right/D       - Tilt one step further right
  Down/S        - Level out
  Q/Esc         - Quit

The screen is drawn with half-block characters in truecolor; a terminal
of at least 160x60 shows the full picture.

Examples:
  rocketberry play
  rocketberry play --backend term
  rocketberry play --mute --log-file rocketberry.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend (see 'rocketberry backends')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'rocketberry backends' to list them", flagBackend)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal; use 'rocketberry sim' instead")
	}

	// The backends own the screen, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		logger.Debug("terminal size", "cols", w, "rows", h)
		if w < minCols || h < minRows {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, minCols, minRows)
		}
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := cfg.Runtime(flagFPS, seed())
	q := input.NewQueue(cfg.Input.QueueSize)
	kb := tilt.NewKeyboard(cfg.Tilt.Quantizer())

	sess, err := game.New(cfg, rc, game.Deps{
		Font:  font.Default(),
		Tilt:  kb,
		Input: q,
	})
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(flagMute)
	if err := sound.Initialize(); err != nil {
		logger.Warn("continuing without sound", "error", err)
	}
	defer sound.Cleanup()

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	rt := &registry.Runtime{
		Session:  sess,
		Button:   input.NewButton(q, cfg.Input.Debounce, nil),
		Tilt:     kb,
		Sound:    sound,
		Logger:   logger,
		TickRate: rc.TickRate,
	}

	logger.Info("starting", "backend", flagBackend, "seed", rc.Seed, "fps", rc.TickRate)
	runErr := backend.Run(rt)
	logger.Info("stopped",
		"frames", sess.Frame(),
		"high", core.Max(sess.HighScore(), sess.Score()),
		"presses", rt.Button.Presses(),
		"dropped", rt.Button.Dropped(),
	)
	return runErr
}
