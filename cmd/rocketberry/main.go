// rocketberry is a tilt-and-shoot arcade game rendered in the terminal.
//
// Usage:
//
//	rocketberry play              - Play in the terminal
//	rocketberry sim               - Run a scripted headless session
//	rocketberry sprites           - List or export the sprite catalog
//	rocketberry config            - Print the effective configuration
//	rocketberry backends          - List display backends
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search path)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--fps <rate>        - Tick rate (default: 30)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocketberry/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/rocketberry/internal/platform/term"
	_ "github.com/vovakirdan/rocketberry/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocketberry",
	Short: "RocketBerry - tilt, dodge and shoot in your terminal",
	Long: `RocketBerry is a single-button arcade shooter. Tilt the ship to dodge
falling asteroids and press the button to fire at them and the bugs that
try to slip past.

Available commands:
  play      - Play interactively
  sim       - Headless deterministic run
  sprites   - List or export sprites
  config    - Print the effective configuration
  backends  - List display backends

Examples:
  rocketberry play
  rocketberry play --backend term --seed 42
  rocketberry sim --frames 3000 --fire-every 5 --png last.png
  rocketberry sprites --export ./img`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}

// newLogger builds the process logger, writing to --log-file when set and
// to fallback otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocketberry",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

// loadConfig loads the game config and logs where it came from. An
// explicit --config that cannot be loaded is an error.
func loadConfig(logger *log.Logger) (config.GameConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if source == config.SourceBuiltin {
		logger.Warn("embedded config unusable, using built-in defaults")
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
