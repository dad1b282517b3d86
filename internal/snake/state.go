package snake

// State is the full simulation record: snake (head first), food, heading and
// the terminal flag.
type State struct {
	Snake     []Position
	Food      Position
	Direction Direction
	GameOver  bool
}

// Outcome describes what a single step did.
type Outcome int

const (
	OutcomeFrozen   Outcome = iota // game already over, nothing changed
	OutcomeMoved                   // head advanced, tail dropped
	OutcomeGrew                    // food eaten, tail kept
	OutcomeCollided                // wall or body hit, game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFrozen:
		return "frozen"
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// FoodFunc picks a free cell for the given snake. ok is false when none exists.
type FoodFunc func(snake []Position) (food Position, ok bool)

// Step advances s by one tick and returns the new state. The input state,
// including its snake slice, is never modified.
//
// The collision check runs against the body as it was before the move, so
// the tail cell counts as occupied even though it would be vacated.
func Step(s State, boardSize int, place FoodFunc) (State, Outcome) {
	if s.GameOver || len(s.Snake) == 0 {
		return s, OutcomeFrozen
	}

	head := s.Snake[0].Add(s.Direction.Velocity())
	if IsCollision(head, s.Snake, boardSize) {
		s.GameOver = true
		return s, OutcomeCollided
	}

	next := make([]Position, 0, len(s.Snake)+1)
	next = append(next, head)

	if head == s.Food {
		next = append(next, s.Snake...)
		s.Snake = next
		food, ok := place(next)
		if !ok {
			food = NoFood
		}
		s.Food = food
		return s, OutcomeGrew
	}

	next = append(next, s.Snake[:len(s.Snake)-1]...)
	s.Snake = next
	return s, OutcomeMoved
}

// IsCollision reports whether head leaves the board or lands on any segment of body.
func IsCollision(head Position, body []Position, boardSize int) bool {
	if !head.InBounds(boardSize) {
		return true
	}
	return occupies(body, head)
}

func occupies(body []Position, p Position) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
