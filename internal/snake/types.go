package snake

import (
	"fmt"
	"strings"
)

// Position is a cell on the board.
type Position struct {
	X, Y int
}

// NoFood marks the absence of food when the board has no free cell left.
var NoFood = Position{X: -1, Y: -1}

// Add returns p translated by v.
func (p Position) Add(v Velocity) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// InBounds reports whether p lies within [0, size) on both axes.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Velocity is a unit step applied to the head each tick.
type Velocity struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Velocity returns the unit vector for d. Y grows downwards.
func (d Direction) Velocity() Velocity {
	switch d {
	case DirUp:
		return Velocity{X: 0, Y: -1}
	case DirDown:
		return Velocity{X: 0, Y: 1}
	case DirLeft:
		return Velocity{X: -1, Y: 0}
	default:
		return Velocity{X: 1, Y: 0}
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names ("up") and single letters ("u"), case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}
