package snake

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Renderer receives a snapshot after the game starts and after every tick.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) { f(s) }

// Runner drives a Game from a Clock and an asynchronous direction stream.
// Ticks and direction changes are consumed on the single goroutine running
// Run, so a tick never observes a half-applied change.
type Runner struct {
	game     *Game
	clock    Clock
	renderer Renderer
	dirs     chan Direction
	logger   *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the runner logger.
func WithRunnerLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner wires game, clock and renderer. renderer may be nil.
func NewRunner(game *Game, clock Clock, renderer Renderer, opts ...RunnerOption) *Runner {
	if renderer == nil {
		renderer = RendererFunc(func(Snapshot) {})
	}
	r := &Runner{
		game:     game,
		clock:    clock,
		renderer: renderer,
		dirs:     make(chan Direction, 1),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetDirection queues a direction change without blocking. A change that
// has not been consumed yet is replaced, so the last write wins.
func (r *Runner) SetDirection(d Direction) {
	for {
		select {
		case r.dirs <- d:
			return
		default:
		}
		select {
		case <-r.dirs:
		default:
		}
	}
}

// Run blocks until the game is over (returns nil) or ctx is done (returns
// ctx.Err()). The clock is stopped on every return path, and no Tick
// happens after Run returns.
func (r *Runner) Run(ctx context.Context) error {
	defer r.clock.Stop()

	r.renderer.Render(r.game.Snapshot())
	if r.game.GameOver() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner cancelled", "tick", r.game.Ticks())
			return ctx.Err()

		case d := <-r.dirs:
			r.game.SetDirection(d)

		case <-r.clock.C():
			if err := ctx.Err(); err != nil {
				return err
			}
			r.drainDirection()
			r.game.Tick()
			r.renderer.Render(r.game.Snapshot())
			if a, ok := r.clock.(acker); ok {
				a.Ack()
			}
			if r.game.GameOver() {
				r.logger.Debug("runner stopped on game over", "tick", r.game.Ticks())
				return nil
			}
		}
	}
}

// drainDirection applies a change queued after the last select.
func (r *Runner) drainDirection() {
	select {
	case d := <-r.dirs:
		r.game.SetDirection(d)
	default:
	}
}
