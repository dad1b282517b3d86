package snake

import (
	"errors"
	"fmt"
)

// Defaults match the classic board.
const (
	DefaultBoardSize = 19
	DefaultStartX    = 5
	DefaultStartY    = 5
)

var (
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrStartOutOfBounds = errors.New("start position outside the board")
	ErrInvalidAttempts  = errors.New("food attempts must not be negative")
)

// Config holds the simulation parameters.
type Config struct {
	BoardSize int
	Start     Position
	Direction Direction

	// MaxFoodAttempts bounds rejection sampling before falling back to the
	// free-cell list. 0 selects 4 × BoardSize².
	MaxFoodAttempts int

	Seed int64
}

// DefaultConfig returns the classic 19×19 setup with the snake at (5,5) heading right.
func DefaultConfig() Config {
	return Config{
		BoardSize: DefaultBoardSize,
		Start:     Position{X: DefaultStartX, Y: DefaultStartY},
		Direction: DirRight,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.BoardSize <= 0 {
		return fmt.Errorf("snake: %w (got %d)", ErrInvalidBoardSize, c.BoardSize)
	}
	if !c.Start.InBounds(c.BoardSize) {
		return fmt.Errorf("snake: %w: %s on %dx%d", ErrStartOutOfBounds, c.Start, c.BoardSize, c.BoardSize)
	}
	if c.MaxFoodAttempts < 0 {
		return fmt.Errorf("snake: %w (got %d)", ErrInvalidAttempts, c.MaxFoodAttempts)
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("snake: invalid start direction %d", c.Direction)
	}
	return nil
}

func (c Config) foodAttempts() int {
	if c.MaxFoodAttempts > 0 {
		return c.MaxFoodAttempts
	}
	return 4 * c.BoardSize * c.BoardSize
}
