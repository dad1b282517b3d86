// Package snake implements the snake simulation loop: movement, collision
// detection and food placement on a square grid. It has no notion of
// terminals or timers; those live in the platform layer.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Game owns one simulation and advances it one step per Tick.
// It is not safe for concurrent use; the Runner and the TUI model each drive
// a Game from a single goroutine.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	placer *FoodPlacer
	logger *log.Logger

	state State
	tick  uint64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand overrides the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// New validates cfg and starts a game: a single segment at cfg.Start and
// food on a random free cell. A zero seed is replaced by the current time.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.Seed = seed
	}

	g := &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.placer = NewFoodPlacer(g.rng, cfg.BoardSize, cfg.foodAttempts())

	g.state = State{
		Snake:     []Position{cfg.Start},
		Direction: cfg.Direction,
	}
	g.state.Food, _ = g.placer.Place(g.state.Snake)

	g.logger.Info("game started",
		"board", cfg.BoardSize,
		"start", cfg.Start.String(),
		"food", g.state.Food.String(),
	)
	return g, nil
}

// Config returns the configuration the game was created with, including the
// effective seed.
func (g *Game) Config() Config {
	return g.cfg
}

// Tick advances the simulation by exactly one step. After game over it is a no-op.
func (g *Game) Tick() Outcome {
	if g.state.GameOver {
		return OutcomeFrozen
	}

	next, outcome := Step(g.state, g.cfg.BoardSize, g.placer.Place)
	g.state = next
	g.tick++

	switch outcome {
	case OutcomeGrew:
		g.logger.Debug("food eaten",
			"tick", g.tick,
			"length", len(next.Snake),
			"food", next.Food.String(),
		)
		if next.Food == NoFood {
			g.logger.Warn("board full, no food placed", "tick", g.tick)
		}
	case OutcomeCollided:
		head := next.Snake[0].Add(next.Direction.Velocity())
		g.logger.Info("game over",
			"tick", g.tick,
			"length", len(next.Snake),
			"hit", head.String(),
		)
	}
	return outcome
}

// SetDirection changes the heading for the next tick. There is no reversal
// guard: turning back onto the body ends the game on the next tick.
// Ignored once the game is over.
func (g *Game) SetDirection(d Direction) {
	if g.state.GameOver || !d.Valid() {
		return
	}
	if d != g.state.Direction {
		g.logger.Debug("direction", "from", g.state.Direction, "to", d, "tick", g.tick)
	}
	g.state.Direction = d
}

// GameOver reports whether the game has reached its terminal state.
func (g *Game) GameOver() bool {
	return g.state.GameOver
}

// State returns a copy of the current state.
func (g *Game) State() State {
	s := g.state
	s.Snake = append([]Position(nil), g.state.Snake...)
	return s
}

// Ticks returns the number of ticks that changed state.
func (g *Game) Ticks() uint64 {
	return g.tick
}
