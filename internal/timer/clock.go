package timer

import "time"

// Ticker is a repeating wall-clock timer that can be stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers and reports the current time.
// Tests swap in a manual implementation.
type Clock interface {
	NewTicker(d time.Duration) Ticker
	Now() time.Time
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(d)}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t systemTicker) C() <-chan time.Time { return t.ticker.C }

func (t systemTicker) Stop() { t.ticker.Stop() }
