package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/input"
	"github.com/vovakirdan/gridsnake/internal/render"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Play with raw keyboard input",
	Long: `Play in a plain terminal without the TUI framework.

The game loop runs on its own goroutine and reads directions from the
keyboard. Frames are redrawn in ASCII after every tick.

Controls:
  Arrows/WASD  - Change direction
  Q/Esc/Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	RunE: runRaw,
}

func runRaw(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("gridsnake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	simCfg, err := cfg.ToSim()
	if err != nil {
		return err
	}
	game, err := snake.New(simCfg, snake.WithLogger(logger))
	if err != nil {
		return err
	}

	clock, err := newClock(cfg.Tick)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := render.Options{Status: "Tick: " + cfg.Tick.String(), Hint: "q quit"}
	runner := snake.NewRunner(game, clock, snake.RendererFunc(func(s snake.Snapshot) {
		// Raw mode needs explicit carriage returns.
		frame := strings.ReplaceAll(render.Text(s, opts), "\n", "\r\n")
		fmt.Fprint(out, clearScreen+frame+"\r\n")
	}), snake.WithRunnerLogger(logger))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	keys := input.NewKeyboard(logger)
	keyErr := make(chan error, 1)
	go func() {
		keyErr <- keys.Listen(ctx, func(a core.Action) {
			if a == core.ActionQuit {
				cancel()
				return
			}
			if dir, ok := input.Direction(a); ok {
				runner.SetDirection(dir)
			}
		})
		cancel()
	}()

	runErr := runner.Run(ctx)
	cancel()
	if err := <-keyErr; err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	fmt.Fprintln(out, rawSummary(game.Snapshot()))
	return nil
}

// rawSummary is the line printed when a raw session ends, either on game
// over or because the player quit.
func rawSummary(s snake.Snapshot) string {
	end := "Quit"
	if s.GameOver {
		end = "Game over"
	}
	return fmt.Sprintf("%s. Length %d after %d ticks.", end, s.Len(), s.Tick)
}

// newClock builds the wall clock for the configured tick policy.
func newClock(t config.TickConfig) (snake.Clock, error) {
	if t.Mode == config.TickFrame {
		return snake.NewFrameClock(t.FPS)
	}
	return snake.NewIntervalClock(t.Interval)
}
