package snake

import "math/rand"

// FoodPlacer samples food cells uniformly over a square board.
type FoodPlacer struct {
	rng         *rand.Rand
	boardSize   int
	maxAttempts int
}

// NewFoodPlacer creates a placer. maxAttempts <= 0 selects 4 × boardSize².
func NewFoodPlacer(rng *rand.Rand, boardSize, maxAttempts int) *FoodPlacer {
	if maxAttempts <= 0 {
		maxAttempts = 4 * boardSize * boardSize
	}
	return &FoodPlacer{rng: rng, boardSize: boardSize, maxAttempts: maxAttempts}
}

// Place returns a cell not covered by snake. It rejection-samples up to the
// attempt budget, then picks uniformly from the remaining free cells. It
// returns NoFood and false when the snake covers the whole board.
func (p *FoodPlacer) Place(snake []Position) (Position, bool) {
	occupied := make(map[Position]struct{}, len(snake))
	for _, seg := range snake {
		occupied[seg] = struct{}{}
	}

	for range p.maxAttempts {
		candidate := Position{X: p.rng.Intn(p.boardSize), Y: p.rng.Intn(p.boardSize)}
		if _, taken := occupied[candidate]; !taken {
			return candidate, true
		}
	}

	free := freeCells(p.boardSize, occupied)
	if len(free) == 0 {
		return NoFood, false
	}
	return free[p.rng.Intn(len(free))], true
}

// PlaceFood is a one-shot helper around FoodPlacer with the default budget.
func PlaceFood(rng *rand.Rand, boardSize int, snake []Position) (Position, bool) {
	return NewFoodPlacer(rng, boardSize, 0).Place(snake)
}

func freeCells(size int, occupied map[Position]struct{}) []Position {
	free := make([]Position, 0, max(size*size-len(occupied), 0))
	for y := range size {
		for x := range size {
			p := Position{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
