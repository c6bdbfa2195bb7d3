// Package app is the composition root for tock.
//
// Run loads the config and prefs, opens the log file and builds the pieces
// of a session:
//
//	config.Load ──> settings.Store ──> timer.Engine
//	                                       │
//	                     Subscribe ────────┼──────── Subscribe
//	                         │                           │
//	                  effects.Router                  ui.Model
//	              (audio, notify, power)          (Bubble Tea program)
//
// The router runs on its own goroutine started by StartEffects. The UI
// blocks until the user quits, the engine closes or ctx is cancelled. On the
// way out Run closes the engine, waits for the router to stop the ambience
// and release the wake lock, then closes the audio player.
//
// Logging uses the standard library logger redirected to a file with
// tea.LogToFile, since the terminal belongs to the UI. With no log file the
// logger is discarded.
package app
