package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, 42)
	snap := g.Snapshot()

	if snap.Len() != 1 || snap.Head() != (Position{X: 5, Y: 5}) {
		t.Errorf("expected single segment at (5,5), got %v", snap.Snake)
	}
	if snap.Direction != DirRight {
		t.Errorf("expected initial direction right, got %v", snap.Direction)
	}
	if snap.GameOver {
		t.Error("game should not start in game over state")
	}
	if !snap.Food.InBounds(DefaultBoardSize) {
		t.Errorf("food out of bounds: %v", snap.Food)
	}
	if snap.Occupied(snap.Food) {
		t.Errorf("food placed on snake at %v", snap.Food)
	}
	if snap.BoardSize != DefaultBoardSize {
		t.Errorf("expected board size %d, got %d", DefaultBoardSize, snap.BoardSize)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero board", Config{BoardSize: 0}, ErrInvalidBoardSize},
		{"negative board", Config{BoardSize: -4}, ErrInvalidBoardSize},
		{"start outside", Config{BoardSize: 5, Start: Position{X: 5, Y: 0}}, ErrStartOutOfBounds},
		{"negative start", Config{BoardSize: 5, Start: Position{X: 0, Y: -1}}, ErrStartOutOfBounds},
		{"negative attempts", Config{BoardSize: 5, MaxFoodAttempts: -1}, ErrInvalidAttempts},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.cfg)
			if err == nil {
				t.Fatalf("New(%+v) should fail", tc.cfg)
			}
			if g != nil {
				t.Error("New should return a nil game on error")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	moves := map[int]Direction{3: DirDown, 8: DirRight, 12: DirUp, 15: DirRight}
	for i := 0; i < 40; i++ {
		if d, ok := moves[i]; ok {
			g1.SetDirection(d)
			g2.SetDirection(d)
		}
		g1.Tick()
		g2.Tick()
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Food != s2.Food || s1.Head() != s2.Head() || s1.GameOver != s2.GameOver {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestWithRandMatchesSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	seeded, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cfg.Seed = 1
	injected, err := New(cfg, WithRand(rand.New(rand.NewSource(99))))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if seeded.Snapshot().Food != injected.Snapshot().Food {
		t.Errorf("food = %v with injected source, expected %v", injected.Snapshot().Food, seeded.Snapshot().Food)
	}

	// A nil source keeps the seeded one.
	cfg.Seed = 99
	fallback, err := New(cfg, WithRand(nil))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if fallback.Snapshot().Food != seeded.Snapshot().Food {
		t.Error("WithRand(nil) should leave the seeded source in place")
	}
}

func TestEatFoodScenario(t *testing.T) {
	g := newTestGame(t, 7)
	g.state = State{
		Snake:     []Position{{X: 5, Y: 5}},
		Food:      Position{X: 6, Y: 5},
		Direction: DirRight,
	}

	if got := g.Tick(); got != OutcomeGrew {
		t.Fatalf("Tick() = %v, expected grew", got)
	}

	snap := g.Snapshot()
	want := []Position{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if !equalSnake(snap.Snake, want) {
		t.Errorf("snake = %v, expected %v", snap.Snake, want)
	}
	if snap.Food == (Position{X: 6, Y: 5}) || snap.Food == (Position{X: 5, Y: 5}) {
		t.Errorf("food should move off the snake, got %v", snap.Food)
	}
	if !snap.Food.InBounds(DefaultBoardSize) {
		t.Errorf("food out of bounds: %v", snap.Food)
	}
}

func TestWallCollisionScenario(t *testing.T) {
	g := newTestGame(t, 8)
	g.state = State{
		Snake:     []Position{{X: 0, Y: 0}},
		Food:      Position{X: 10, Y: 10},
		Direction: DirLeft,
	}

	if got := g.Tick(); got != OutcomeCollided {
		t.Fatalf("Tick() = %v, expected collided", got)
	}
	if !g.GameOver() {
		t.Fatal("game should be over after leaving the board")
	}
	if snap := g.Snapshot(); !equalSnake(snap.Snake, []Position{{X: 0, Y: 0}}) {
		t.Errorf("snake should be unchanged after collision, got %v", snap.Snake)
	}
}

func TestTailCellCollisionScenario(t *testing.T) {
	g := newTestGame(t, 9)
	g.state = State{
		Snake:     []Position{{X: 5, Y: 5}, {X: 5, Y: 6}},
		Food:      Position{X: 0, Y: 0},
		Direction: DirDown,
	}

	g.Tick()

	if !g.GameOver() {
		t.Error("moving into the current tail cell should end the game")
	}
}

func TestReversalScenario(t *testing.T) {
	g := newTestGame(t, 10)
	g.state = State{
		Snake:     []Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
		Food:      Position{X: 0, Y: 0},
		Direction: DirRight,
	}

	g.SetDirection(DirLeft)
	if g.State().Direction != DirLeft {
		t.Fatal("reversal should be accepted without validation")
	}

	g.Tick()
	if !g.GameOver() {
		t.Error("reversing into the body should end the game")
	}
}

func TestSingleSegmentReversalSurvives(t *testing.T) {
	g := newTestGame(t, 11)
	g.state = State{
		Snake:     []Position{{X: 5, Y: 5}},
		Food:      Position{X: 0, Y: 0},
		Direction: DirRight,
	}

	g.SetDirection(DirLeft)
	g.Tick()

	if g.GameOver() {
		t.Error("a single segment has no body to reverse into")
	}
	if head := g.Snapshot().Head(); head != (Position{X: 4, Y: 5}) {
		t.Errorf("head = %v, expected (4,5)", head)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newTestGame(t, 12)
	g.state = State{
		Snake:     []Position{{X: 0, Y: 3}, {X: 1, Y: 3}},
		Food:      Position{X: 9, Y: 9},
		Direction: DirLeft,
	}
	g.Tick()
	if !g.GameOver() {
		t.Fatal("expected game over")
	}

	before := g.Snapshot()
	g.SetDirection(DirDown)
	for i := 0; i < 5; i++ {
		if got := g.Tick(); got != OutcomeFrozen {
			t.Fatalf("Tick() after game over = %v, expected frozen", got)
		}
	}
	after := g.Snapshot()

	if !equalSnake(before.Snake, after.Snake) || before.Food != after.Food ||
		before.Direction != after.Direction || before.Tick != after.Tick {
		t.Errorf("state changed after game over:\n%+v\n%+v", before, after)
	}
}

func TestSetDirectionLastWriteWins(t *testing.T) {
	g := newTestGame(t, 13)
	g.state.Food = Position{X: 0, Y: 0}

	g.SetDirection(DirUp)
	g.SetDirection(DirDown)
	g.SetDirection(Direction(99)) // ignored
	g.Tick()

	if head := g.Snapshot().Head(); head != (Position{X: 5, Y: 6}) {
		t.Errorf("head = %v, expected (5,6) after last direction down", head)
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		cfg := DefaultConfig()
		cfg.BoardSize = 8
		cfg.Start = Position{X: 3, Y: 3}
		cfg.Seed = seed
		g, err := New(cfg)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		moves := rand.New(rand.NewSource(seed * 31))

		for i := 0; i < 500 && !g.GameOver(); i++ {
			if moves.Intn(3) == 0 {
				g.SetDirection(Direction(moves.Intn(4)))
			}
			before := g.Snapshot()
			outcome := g.Tick()
			after := g.Snapshot()

			switch outcome {
			case OutcomeMoved:
				if after.Len() != before.Len() {
					t.Fatalf("seed %d: length changed on plain move: %d -> %d", seed, before.Len(), after.Len())
				}
			case OutcomeGrew:
				if after.Len() != before.Len()+1 {
					t.Fatalf("seed %d: expected growth by 1: %d -> %d", seed, before.Len(), after.Len())
				}
				if after.HasFood() && after.Occupied(after.Food) {
					t.Fatalf("seed %d: food relocated onto snake at %v", seed, after.Food)
				}
			case OutcomeCollided:
				if !equalSnake(before.Snake, after.Snake) {
					t.Fatalf("seed %d: collision committed a move", seed)
				}
				continue
			}

			seen := make(map[Position]bool, after.Len())
			for _, seg := range after.Snake {
				if !seg.InBounds(cfg.BoardSize) {
					t.Fatalf("seed %d: segment %v out of bounds", seed, seg)
				}
				if seen[seg] {
					t.Fatalf("seed %d: duplicate segment %v", seed, seg)
				}
				seen[seg] = true
			}
			if after.HasFood() && after.Occupied(after.Food) {
				t.Fatalf("seed %d: food under snake at %v", seed, after.Food)
			}
		}
	}
}

func TestDirectionVelocity(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Velocity
	}{
		{DirUp, Velocity{X: 0, Y: -1}},
		{DirDown, Velocity{X: 0, Y: 1}},
		{DirLeft, Velocity{X: -1, Y: 0}},
		{DirRight, Velocity{X: 1, Y: 0}},
	}
	for _, tc := range tests {
		if got := tc.dir.Velocity(); got != tc.want {
			t.Errorf("%v.Velocity() = %+v, expected %+v", tc.dir, got, tc.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"U", DirUp, false},
		{" Down ", DirDown, false},
		{"l", DirLeft, false},
		{"RIGHT", DirRight, false},
		{"north", DirRight, true},
		{"", DirRight, true},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func equalSnake(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
