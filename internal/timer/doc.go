// Package timer implements the countdown state machine.
//
// # Overview
//
// Engine owns a single State record (status, remaining and initial seconds)
// and is the only thing that changes it. Callers drive it with Adjust, Start,
// Pause and Reset; while running, a one-second ticker calls the internal tick.
//
// # State Machine
//
//	         Adjust (idle only)
//	            ┌──┐
//	            ▼  │
//	┌──────┐  Start  ┌─────────┐  Pause  ┌────────┐
//	│ Idle │────────>│ Running │────────>│ Paused │
//	└──────┘<────────└─────────┘<────────└────────┘
//	   ▲   Reset or     │         Start      │
//	   │   reaching 0   │                    │
//	   └────────────────┴────── Reset ───────┘
//
// # Tick
//
// Each tick computes next = remaining-1 and elapsed = initial-next, asks
// ShouldFire whether an interval alert is due (never when next is 0) and
// either stores next or, at zero, completes: status becomes Idle and the
// ticker is torn down in the same step.
//
// # Ticking Process
//
// At most one ticker exists, and only while running. Every ticker carries a
// generation number, so a tick still in flight after Pause or Reset is thrown
// away instead of decrementing a stopped timer.
//
// # Events
//
// Subscribe returns a buffered channel of Event values: entered/left running,
// tick, alert, completed, adjusted and reset. Sends never block; a full
// subscriber misses events.
package timer
