// Package settings holds the sound and keep-awake options of the timer.
//
// # Core Types
//
// SoundConfig:
//   - Enabled flag plus an optional asset reference (a file path here)
//   - DisplayName is derived from the reference and cleared with it
//
// IntervalConfig:
//   - SoundConfig plus Period in seconds; Period <= 0 never fires
//
// Settings:
//   - Ambience, Interval and KeepScreenOn as one immutable value
//
// Store:
//   - RWMutex-guarded holder of the current Settings
//   - Replace swaps the whole value, Settings returns a copy
//
// # Update Semantics
//
// Settings are never edited in place. The UI builds a new value and calls
// Replace; the timer engine reads Settings() on every tick, so a change made
// while running applies on the next tick without any extra propagation:
//
//	next := store.Settings()
//	next.Interval.Period = 30
//	store.Replace(next)
//
// Values are normalized on the way in so the FileRef/DisplayName pairing
// always holds for what readers see.
package settings
