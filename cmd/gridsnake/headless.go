package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/input"
	"github.com/vovakirdan/gridsnake/internal/render"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

var (
	flagMoves string
	flagTicks int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a scripted game and print every frame",
	Long: `Run a game without a terminal UI. Each scripted move is applied
before its tick and the board is printed after every tick.

Moves are one letter per tick (U, D, L, R, '.' to keep going) or
comma separated names (up,down,left,right,-).

Examples:
  gridsnake headless --seed 7 --moves RRRDDD
  gridsnake headless --seed 7 --moves "down,down,left" --ticks 10`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script")
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Extra ticks to run after the script")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	moves, err := input.ParseScript(flagMoves)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("gridsnake", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := playScript(cmd.Context(), cfg, moves, flagTicks, cmd.OutOrStdout(), snake.WithLogger(logger))
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	status := "running"
	if snap.GameOver {
		status = "game over"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: length %d after %d ticks\n", status, snap.Len(), snap.Tick)
	return nil
}

// playScript drives a game with a manual clock: every move is queued and
// then exactly one tick is delivered. extra ticks follow the script. The
// run ends early on game over.
func playScript(ctx context.Context, cfg config.SnakeConfig, moves []input.Move, extra int, out io.Writer, opts ...snake.Option) (*snake.Game, error) {
	simCfg, err := cfg.ToSim()
	if err != nil {
		return nil, err
	}
	game, err := snake.New(simCfg, opts...)
	if err != nil {
		return nil, err
	}

	clock := snake.NewManualClock()
	textOpts := render.Options{Status: fmt.Sprintf("Seed: %d", game.Config().Seed)}
	runner := snake.NewRunner(game, clock, snake.RendererFunc(func(s snake.Snapshot) {
		fmt.Fprintf(out, "tick %d\n%s\n\n", s.Tick, render.Text(s, textOpts))
	}))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	for i := 0; i < len(moves)+extra; i++ {
		if i < len(moves) && moves[i].Change {
			runner.SetDirection(moves[i].Direction)
		}
		if !clock.Advance() {
			break
		}
	}

	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return game, nil
}
