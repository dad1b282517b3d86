package snake

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) Render(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[len(r.snaps)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func startRunner(t *testing.T, g *Game, clock Clock, rec *recorder) (*Runner, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(g, clock, rec)
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	return r, cancel, done
}

func TestRunnerAppliesDirectionBeforeNextTick(t *testing.T) {
	g := newTestGame(t, 21)
	g.state.Food = Position{X: 0, Y: 0}
	clock := NewManualClock()
	rec := &recorder{}

	r, cancel, done := startRunner(t, g, clock, rec)
	defer cancel()

	if !clock.Advance() {
		t.Fatal("first Advance should succeed")
	}
	r.SetDirection(DirDown)
	if !clock.Advance() {
		t.Fatal("second Advance should succeed")
	}

	if head := rec.last().Head(); head != (Position{X: 6, Y: 6}) {
		t.Errorf("head = %v, expected (6,6)", head)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if clock.Advance() {
		t.Error("no tick should be delivered after cancellation")
	}
}

func TestRunnerStopsOnGameOver(t *testing.T) {
	cfg := Config{BoardSize: 4, Start: Position{X: 0, Y: 0}, Direction: DirLeft, Seed: 3}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	clock := NewManualClock()
	rec := &recorder{}

	_, cancel, done := startRunner(t, g, clock, rec)
	defer cancel()

	clock.Advance()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, expected nil on game over", err)
	}
	if !rec.last().GameOver {
		t.Error("last rendered snapshot should show game over")
	}
	if clock.Advance() {
		t.Error("clock should be stopped once the game is over")
	}
	if rec.count() != 2 {
		t.Errorf("expected initial + one tick render, got %d", rec.count())
	}
}

func TestRunnerLastDirectionWins(t *testing.T) {
	g := newTestGame(t, 22)
	g.state.Food = Position{X: 0, Y: 0}
	clock := NewManualClock()
	rec := &recorder{}

	// Not started yet: queued changes replace each other.
	r := NewRunner(g, clock, rec)
	r.SetDirection(DirUp)
	r.SetDirection(DirLeft)
	r.SetDirection(DirDown)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	clock.Advance()
	if head := rec.last().Head(); head != (Position{X: 5, Y: 6}) {
		t.Errorf("head = %v, expected (5,6) from last queued direction", head)
	}
	cancel()
	<-done
}

func TestRunnerWithIntervalClock(t *testing.T) {
	cfg := Config{BoardSize: 3, Start: Position{X: 1, Y: 1}, Direction: DirRight, Seed: 4}
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.state.Food = Position{X: 0, Y: 0}
	clock, err := NewIntervalClock(time.Millisecond)
	if err != nil {
		t.Fatalf("NewIntervalClock() failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := NewRunner(g, clock, nil).Run(ctx); err != nil {
		t.Fatalf("Run() = %v, expected game over before timeout", err)
	}
	if !g.GameOver() {
		t.Error("snake heading right on a 3x3 board should hit the wall")
	}
}

func TestRunnerAlreadyOver(t *testing.T) {
	g := newTestGame(t, 23)
	g.state.GameOver = true
	clock := NewManualClock()

	if err := NewRunner(g, clock, nil).Run(context.Background()); err != nil {
		t.Errorf("Run() = %v, expected nil", err)
	}
	if clock.Advance() {
		t.Error("clock should be stopped")
	}
}

func TestClockRejectsInvalidRates(t *testing.T) {
	if _, err := NewIntervalClock(0); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewIntervalClock(0) error = %v", err)
	}
	if _, err := NewFrameClock(-1); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewFrameClock(-1) error = %v", err)
	}
	c, err := NewFrameClock(60)
	if err != nil {
		t.Fatalf("NewFrameClock(60) failed: %v", err)
	}
	c.Stop()
}

func TestManualClockStopIdempotent(t *testing.T) {
	c := NewManualClock()
	c.Stop()
	c.Stop()
	if c.Advance() {
		t.Error("Advance after Stop should return false")
	}
}
