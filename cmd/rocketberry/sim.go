package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocketberry/internal/game"
	"github.com/vovakirdan/rocketberry/internal/platform/headless"
)

var (
	flagFrames    int
	flagFireEvery int
	flagTilt      int
	flagPNG       string
	flagTrace     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted headless session",
	Long: `Run the game without a display and print a summary.

The button is pressed every --fire-every frames (the first press leaves
the start screen) and the tilt sensor reads --tilt for the whole run.
Runs with the same seed, config and script always end the same way.

Examples:
  rocketberry sim --frames 3000 --seed 42
  rocketberry sim --fire-every 5 --tilt -350 --png last.png
  rocketberry sim --frames 600 --trace --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 1800, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 5, "Press the button every N frames (0 = never)")
	simCmd.Flags().IntVar(&flagTilt, "tilt", 0, "Raw tilt sample held for the run")
	simCmd.Flags().StringVar(&flagPNG, "png", "", "Write the final frame to this PNG file")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every step event at debug level")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	rc := cfg.Runtime(flagFPS, seed())

	opts := headless.Options{
		Frames:    flagFrames,
		FireEvery: flagFireEvery,
		Tilt:      flagTilt,
	}
	if flagTrace {
		opts.Observe = func(r game.StepResult) {
			for _, ev := range r.Events {
				logger.Debug("event", "frame", r.Frame, "kind", ev.Kind, "value", ev.Value, "score", r.Score)
			}
		}
	}

	sim, err := headless.New(cfg, rc, opts)
	if err != nil {
		return err
	}
	logger.Info("simulating", "frames", flagFrames, "seed", rc.Seed, "fire_every", flagFireEvery, "tilt", flagTilt)
	sum := sim.Run()
	fmt.Fprintln(cmd.OutOrStdout(), sum)

	if flagPNG == "" {
		return nil
	}
	f, err := os.Create(flagPNG)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := sim.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("frame written", "path", flagPNG)
	return nil
}
