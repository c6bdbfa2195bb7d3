package timer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/tock/internal/settings"
)

const (
	// MaxSeconds is 99:59:59, the largest duration the display can show.
	MaxSeconds = 359999
	// DefaultSeconds is the duration a fresh engine starts with.
	DefaultSeconds = 300
)

// Status is the engine's current mode.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// State is the countdown record owned by the engine.
type State struct {
	Status    Status
	Remaining int
	Initial   int
}

// Elapsed returns seconds counted down since the run started.
func (s State) Elapsed() int {
	return s.Initial - s.Remaining
}

// SettingsSource supplies the current settings on every tick.
type SettingsSource interface {
	Settings() settings.Settings
}

// Options contains runtime options for Engine.
type Options struct {
	TickInterval   time.Duration
	Clock          Clock
	InitialSeconds int
}

// Engine is the countdown state machine. It is safe for concurrent use; the
// ticking goroutine and UI callers both go through the same mutex.
type Engine struct {
	mu         sync.Mutex
	source     SettingsSource
	clock      Clock
	interval   time.Duration
	state      State
	runID      string
	ticker     Ticker
	stopCh     chan struct{}
	generation uint64
	events     []chan Event
	closed     bool
}

type staticSource struct{ settings settings.Settings }

func (s staticSource) Settings() settings.Settings { return s.settings }

// New creates an idle Engine reading settings from source.
func New(source SettingsSource, options Options) *Engine {
	if source == nil {
		source = staticSource{settings: settings.Default()}
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	initial := DefaultSeconds
	if options.InitialSeconds > 0 {
		initial = Clamp(options.InitialSeconds)
	}

	return &Engine{
		source:   source,
		clock:    options.Clock,
		interval: options.TickInterval,
		state: State{
			Status:    StatusIdle,
			Remaining: initial,
			Initial:   initial,
		},
	}
}

// Subscribe registers a new observer channel. Events are dropped for a
// subscriber whose buffer is full.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(ch)
		return ch
	}
	e.events = append(e.events, ch)
	return ch
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Adjust sets a new duration. It only applies while idle and reports whether
// it did; the value is clamped to [0, MaxSeconds].
func (e *Engine) Adjust(total int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state.Status != StatusIdle {
		return false
	}
	total = Clamp(total)
	e.state.Remaining = total
	e.state.Initial = total
	e.emitLocked(EventAdjusted, 0)
	return true
}

// Start enters the running state. Calling it while running does nothing.
// A finished timer (idle at zero) is rewound to its initial duration first;
// with no duration at all the engine stays idle.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.state.Status == StatusRunning {
		return
	}

	if e.state.Status == StatusIdle {
		if e.state.Remaining <= 0 {
			e.state.Remaining = e.state.Initial
		}
		if e.state.Remaining <= 0 {
			return
		}
		e.runID = uuid.NewString()
	}

	e.state.Status = StatusRunning
	e.startTickingLocked()
	e.emitLocked(EventEnteredRunning, e.state.Elapsed())
}

// Pause freezes a running countdown.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Status != StatusRunning {
		return
	}
	e.state.Status = StatusPaused
	e.stopTickingLocked()
	e.emitLocked(EventLeftRunning, e.state.Elapsed())
}

// Reset returns to idle with the initial duration restored.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	wasRunning := e.state.Status == StatusRunning
	e.stopTickingLocked()
	e.state.Status = StatusIdle
	e.state.Remaining = e.state.Initial
	if wasRunning {
		e.emitLocked(EventLeftRunning, 0)
	}
	e.emitLocked(EventReset, 0)
	e.runID = ""
}

// Close stops ticking and closes all observer channels.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.stopTickingLocked()
	if e.state.Status == StatusRunning {
		e.state.Status = StatusPaused
	}
	e.closed = true
	events := e.events
	e.events = nil
	e.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (e *Engine) startTickingLocked() {
	if e.ticker != nil {
		return
	}
	e.generation++
	ticker := e.clock.NewTicker(e.interval)
	stopCh := make(chan struct{})
	e.ticker = ticker
	e.stopCh = stopCh
	go e.run(ticker, stopCh, e.generation)
}

func (e *Engine) stopTickingLocked() {
	if e.ticker == nil {
		return
	}
	e.ticker.Stop()
	close(e.stopCh)
	e.ticker = nil
	e.stopCh = nil
	e.generation++
}

func (e *Engine) run(ticker Ticker, stopCh <-chan struct{}, generation uint64) {
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			e.tick(generation)
		}
	}
}

// tick advances the countdown by one second. Ticks from a torn-down ticker,
// or that arrive after the engine left the running state, are discarded.
func (e *Engine) tick(generation uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || generation != e.generation || e.state.Status != StatusRunning {
		return
	}

	next := e.state.Remaining - 1
	elapsed := e.state.Initial - next

	interval := e.source.Settings().Interval
	if next > 0 && interval.Enabled && ShouldFire(elapsed, interval.Period) {
		e.emitLocked(EventAlert, elapsed)
	}

	if next <= 0 {
		e.state.Remaining = 0
		e.state.Status = StatusIdle
		e.stopTickingLocked()
		e.emitLocked(EventCompleted, e.state.Initial)
		e.emitLocked(EventLeftRunning, e.state.Initial)
		return
	}
	e.state.Remaining = next
	e.emitLocked(EventTick, elapsed)
}

func (e *Engine) emitLocked(eventType EventType, elapsed int) {
	event := Event{
		Type:    eventType,
		State:   e.state,
		Elapsed: elapsed,
		RunID:   e.runID,
		At:      e.clock.Now(),
	}
	for _, ch := range e.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// Clamp bounds a duration in seconds to [0, MaxSeconds].
func Clamp(total int) int {
	if total < 0 {
		return 0
	}
	if total > MaxSeconds {
		return MaxSeconds
	}
	return total
}
