package timer

import (
	"sync"
	"time"
)

// manualClock hands out tickers that only fire when a test calls fire.
type manualClock struct {
	mu      sync.Mutex
	now     time.Time
	created int
	tickers []*manualTicker
}

type manualTicker struct {
	clock   *manualClock
	c       chan time.Time
	stopped bool
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{clock: c, c: make(chan time.Time, 1)}
	c.created++
	c.tickers = append(c.tickers, t)
	return t
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// active returns the number of tickers that have not been stopped.
func (c *manualClock) active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// fire delivers one tick to every live ticker and reports how many got it.
func (c *manualClock) fire() int {
	c.mu.Lock()
	c.now = c.now.Add(time.Second)
	now := c.now
	var live []*manualTicker
	for _, t := range c.tickers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.mu.Unlock()

	for _, t := range live {
		t.c <- now
	}
	return len(live)
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
