package snake

// Snapshot is an immutable view of the game handed to renderers.
type Snapshot struct {
	Tick      uint64
	BoardSize int
	Snake     []Position // Head at index 0
	Food      Position
	Direction Direction
	GameOver  bool
}

// Snapshot returns the current game snapshot. The snake slice is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		BoardSize: g.cfg.BoardSize,
		Snake:     append([]Position(nil), g.state.Snake...),
		Food:      g.state.Food,
		Direction: g.state.Direction,
		GameOver:  g.state.GameOver,
	}
}

// Head returns the first segment.
func (s Snapshot) Head() Position {
	if len(s.Snake) == 0 {
		return Position{X: -1, Y: -1}
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// HasFood reports whether food is on the board.
func (s Snapshot) HasFood() bool {
	return s.Food != NoFood
}

// Occupied reports whether p is covered by a snake segment.
func (s Snapshot) Occupied(p Position) bool {
	return occupies(s.Snake, p)
}
