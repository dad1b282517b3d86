// gridsnake is a grid snake game for the terminal.
//
// Usage:
//
//	gridsnake play             - Play in the terminal (Bubble Tea)
//	gridsnake serve            - Start SSH server for remote play
//	gridsnake raw              - Play with raw keyboard input, no TUI framework
//	gridsnake headless         - Run a scripted game and print every frame
//	gridsnake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a snake.yaml config file
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--board-size <n>    - Board width and height in cells
//	--tick <mode>       - Tick policy: interval or frame
//	--interval <dur>    - Fixed tick interval (e.g. 200ms)
//	--fps <rate>        - Frame rate when --tick=frame
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagBoardSize int
	flagTick      string
	flagInterval  time.Duration
	flagFPS       int
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid Snake - the classic snake game in your terminal",
	Long: `Grid Snake is a terminal snake game on a square grid.

The snake moves one cell per tick. Eating food grows it by one segment.
Leaving the board or running into its own body ends the game.

Available commands:
  play      - Play in the terminal
  serve     - Start SSH server for remote play
  raw       - Play with raw keyboard input
  headless  - Run a scripted game and print frames
  config    - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --board-size 25 --interval 120ms
  gridsnake serve --ssh :2222
  gridsnake headless --seed 7 --moves RRDDLL`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagBoardSize, "board-size", 0, "Board size in cells (overrides config)")
	pf.StringVar(&flagTick, "tick", "", "Tick policy: interval or frame (overrides config)")
	pf.DurationVar(&flagInterval, "interval", 0, "Tick interval for --tick=interval (overrides config)")
	pf.IntVar(&flagFPS, "fps", 0, "Frame rate for --tick=frame (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rawCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

// overrides holds the command-line values that take precedence over the
// config file. Zero values leave the file setting alone.
type overrides struct {
	Seed      int64
	BoardSize int
	Tick      string
	Interval  time.Duration
	FPS       int
}

func flagOverrides() overrides {
	return overrides{
		Seed:      flagSeed,
		BoardSize: flagBoardSize,
		Tick:      flagTick,
		Interval:  flagInterval,
		FPS:       flagFPS,
	}
}

// apply merges o into cfg and validates the result.
func (o overrides) apply(cfg config.SnakeConfig) (config.SnakeConfig, error) {
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if o.BoardSize != 0 {
		cfg.Board.Size = o.BoardSize
	}
	if o.Tick != "" {
		cfg.Tick.Mode = config.TickMode(o.Tick)
	}
	if o.Interval != 0 {
		cfg.Tick.Interval = o.Interval
	}
	if o.FPS != 0 {
		cfg.Tick.FPS = o.FPS
	}
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// loadConfig reads the config file and applies the global flags.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	return flagOverrides().apply(cfg)
}

// newLogger builds the logger for a command. When no log file is given,
// logs go to fallback. The returned close func is never nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
