package frame

import (
	"context"
	"sync"
	"time"
)

// Ticker runs the pending callback on every tick of a wall clock. All
// callbacks run on the goroutine that called Run.
type Ticker struct {
	interval time.Duration

	// AfterFrame, if set, runs after every callback. Hosts use it to present
	// the finished frame.
	AfterFrame func()

	mu      sync.Mutex
	pending func()
}

// NewTicker returns a ticker firing fps times per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

func (t *Ticker) RequestFrame(cb func()) {
	t.mu.Lock()
	t.pending = cb
	t.mu.Unlock()
}

func (t *Ticker) take() func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	cb := t.pending
	t.pending = nil
	return cb
}

// Run blocks until ctx is done and returns its error.
func (t *Ticker) Run(ctx context.Context) error {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			cb := t.take()
			if cb == nil {
				continue
			}
			cb()
			if t.AfterFrame != nil {
				t.AfterFrame()
			}
		}
	}
}
