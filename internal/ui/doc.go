// Package ui provides the Bubble Tea terminal interface for tock.
//
// The screen shows the remaining time in block digits, the timer status, a
// summary of the active sound options and a key help footer. While the timer
// is idle one segment (hours, minutes or seconds) is selected; left and right
// move the selection and up and down change it. Hours stay visible while idle
// so they can be dialled in from zero.
//
// # Data flow
//
// The model never ticks on its own. It reads the engine's event subscription
// through waitForEvent, one pending read at a time, and redraws from the state
// carried in each event. Key presses call the engine directly and take a fresh
// Snapshot afterwards. When the engine closes the subscription the program
// quits.
//
// # Settings form
//
// Pressing s opens a modal that edits a copy of the session settings.
// Toggles apply at once; text fields apply when focus leaves them, on enter
// and when the form closes with esc. File and period rows are hidden while
// their section is switched off. A period that is not a number becomes zero,
// which disables interval alerts. Each applied change replaces the settings
// wholesale and then calls Options.OnSettingsChanged so ambience and the wake
// lock are re-evaluated.
//
// # Session log
//
// L opens an overlay with the last lines of the log file. Adapter failures
// such as an unreadable audio file or a refused wake lock only show up there,
// since they never interrupt the countdown.
//
// # Themes
//
// Dracula and Slate are built in. T cycles them and the choice is saved to
// the prefs file.
package ui
