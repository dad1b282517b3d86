package snake

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidInterval is returned for non-positive tick intervals or frame rates.
var ErrInvalidInterval = errors.New("tick interval must be positive")

// Clock is a stoppable source of ticks. After Stop returns no further
// value is delivered on C.
type Clock interface {
	C() <-chan time.Time
	Stop()
}

// acker is implemented by clocks that wait for each tick to be processed.
type acker interface {
	Ack()
}

type tickerClock struct {
	ticker *time.Ticker
}

// NewIntervalClock ticks every d.
func NewIntervalClock(d time.Duration) (Clock, error) {
	if d <= 0 {
		return nil, ErrInvalidInterval
	}
	return &tickerClock{ticker: time.NewTicker(d)}, nil
}

// NewFrameClock ticks once per frame at fps frames per second.
func NewFrameClock(fps int) (Clock, error) {
	if fps <= 0 {
		return nil, ErrInvalidInterval
	}
	return NewIntervalClock(time.Second / time.Duration(fps))
}

func (c *tickerClock) C() <-chan time.Time { return c.ticker.C }

func (c *tickerClock) Stop() { c.ticker.Stop() }

// ManualClock delivers a tick only when Advance is called. Advance blocks
// until the consumer has fully processed the tick, which makes scripted
// runs deterministic.
type ManualClock struct {
	c    chan time.Time
	ack  chan struct{}
	done chan struct{}
	once sync.Once
}

// NewManualClock creates a stopped-until-advanced clock.
func NewManualClock() *ManualClock {
	return &ManualClock{
		c:    make(chan time.Time),
		ack:  make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (c *ManualClock) C() <-chan time.Time { return c.c }

// Advance delivers one tick and waits for it to be processed. It returns
// false once the clock is stopped.
func (c *ManualClock) Advance() bool {
	select {
	case c.c <- time.Now():
	case <-c.done:
		return false
	}
	select {
	case <-c.ack:
		return true
	case <-c.done:
		return false
	}
}

// Ack signals that the last tick has been processed.
func (c *ManualClock) Ack() {
	select {
	case c.ack <- struct{}{}:
	case <-c.done:
	}
}

// Stop releases any blocked Advance. Safe to call more than once.
func (c *ManualClock) Stop() {
	c.once.Do(func() { close(c.done) })
}
