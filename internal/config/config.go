// Package config provides YAML-based configuration loading and validation
// for gridsnake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// TickMode selects how simulation ticks are scheduled.
type TickMode string

const (
	TickInterval TickMode = "interval" // fixed period timer
	TickFrame    TickMode = "frame"    // once per rendered frame
)

// Upper bound for the rendered cell width in terminal columns.
const MaxCellSize = 4

var (
	ErrInvalidCellSize = errors.New("cell size out of range")
	ErrInvalidTick     = errors.New("invalid tick settings")
)

// SnakeConfig contains all configuration for a game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Render RenderConfig `yaml:"render"`
	Tick   TickConfig   `yaml:"tick"`
	Food   FoodConfig   `yaml:"food"`
	Seed   int64        `yaml:"seed"`
}

// BoardConfig defines the grid and starting position.
type BoardConfig struct {
	Size      int    `yaml:"size"`
	StartX    int    `yaml:"start_x"`
	StartY    int    `yaml:"start_y"`
	Direction string `yaml:"direction"`
}

// RenderConfig holds purely visual parameters.
type RenderConfig struct {
	CellSize int `yaml:"cell_size"` // terminal columns per board cell
}

// TickConfig defines the tick source.
type TickConfig struct {
	Mode     TickMode      `yaml:"mode"`
	Interval time.Duration `yaml:"interval"`
	FPS      int           `yaml:"fps"`
}

// FoodConfig bounds food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// Period returns the time between two ticks for the configured mode.
func (t TickConfig) Period() time.Duration {
	if t.Mode == TickFrame {
		if t.FPS <= 0 {
			return 0
		}
		return time.Second / time.Duration(t.FPS)
	}
	return t.Interval
}

// String describes the tick policy for status lines.
func (t TickConfig) String() string {
	if t.Mode == TickFrame {
		return fmt.Sprintf("%d fps", t.FPS)
	}
	return t.Interval.String()
}

// Validate checks every field and returns the first problem found.
func (c SnakeConfig) Validate() error {
	simCfg, err := c.ToSim()
	if err != nil {
		return err
	}
	if err := simCfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Render.CellSize < 1 || c.Render.CellSize > MaxCellSize {
		return fmt.Errorf("config: %w: %d (want 1..%d)", ErrInvalidCellSize, c.Render.CellSize, MaxCellSize)
	}
	switch c.Tick.Mode {
	case TickInterval:
		if c.Tick.Interval <= 0 {
			return fmt.Errorf("config: %w: interval %s", ErrInvalidTick, c.Tick.Interval)
		}
	case TickFrame:
		if c.Tick.FPS <= 0 {
			return fmt.Errorf("config: %w: fps %d", ErrInvalidTick, c.Tick.FPS)
		}
	default:
		return fmt.Errorf("config: %w: unknown mode %q", ErrInvalidTick, c.Tick.Mode)
	}
	return nil
}

// ToSim converts the file representation into simulation parameters.
func (c SnakeConfig) ToSim() (snake.Config, error) {
	dir := snake.DirRight
	if c.Board.Direction != "" {
		d, err := snake.ParseDirection(c.Board.Direction)
		if err != nil {
			return snake.Config{}, fmt.Errorf("config: board.direction: %w", err)
		}
		dir = d
	}
	return snake.Config{
		BoardSize:       c.Board.Size,
		Start:           snake.Position{X: c.Board.StartX, Y: c.Board.StartY},
		Direction:       dir,
		MaxFoodAttempts: c.Food.MaxAttempts,
		Seed:            c.Seed,
	}, nil
}
