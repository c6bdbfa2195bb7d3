// Package config loads tock's startup configuration.
//
// The default file is ~/.config/tock/config.toml. A path ending in .yaml or
// .yml is read as YAML instead. A missing file is not an error; Load returns
// Default() so tock works without any setup.
//
// Example config.toml:
//
//	duration = "25m"          # seconds, "MM:SS", "HH:MM:SS" or a Go duration
//	keep_screen_on = true
//	notify_on_complete = true
//	log_file = "~/.local/state/tock/tock.log"   # "-" disables logging
//	volume = 0                # gain in halvings, negative is quieter
//
//	[ambience]
//	enabled = true
//	file = "~/sounds/rain.ogg"
//
//	[interval]
//	enabled = true
//	file = "~/sounds/bell.wav"
//	period = 60
//
// Durations are clamped to what the timer can display and a negative period
// is raised to zero, which disables interval alerts. Paths accept a leading
// tilde and are made absolute.
//
// The values seed the session only. Changes made in the settings form are
// kept in memory and are not written back.
package config
