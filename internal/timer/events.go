package timer

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	EventEnteredRunning EventType = "entered_running"
	EventLeftRunning    EventType = "left_running"
	EventTick           EventType = "tick"
	EventAlert          EventType = "alert"
	EventCompleted      EventType = "completed"
	EventAdjusted       EventType = "adjusted"
	EventReset          EventType = "reset"
)

// Event is an engine update for observers. Adapters act on the intent it
// carries; the engine itself never plays sound or holds locks.
type Event struct {
	Type    EventType
	State   State
	Elapsed int
	RunID   string
	At      time.Time
}
