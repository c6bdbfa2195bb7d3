package settings

import (
	"path/filepath"
	"strings"
)

// DefaultPeriod is the interval alert period used when none is configured.
const DefaultPeriod = 60

// SoundConfig describes an optional audio asset.
// DisplayName is set if and only if FileRef is set.
type SoundConfig struct {
	Enabled     bool
	FileRef     string
	DisplayName string
}

// WithFile returns a copy that points at ref, deriving the display name from it.
// An empty ref clears the asset.
func (s SoundConfig) WithFile(ref string) SoundConfig {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return s.WithoutFile()
	}
	s.FileRef = ref
	s.DisplayName = filepath.Base(ref)
	return s
}

// WithoutFile returns a copy with no asset attached.
func (s SoundConfig) WithoutFile() SoundConfig {
	s.FileRef = ""
	s.DisplayName = ""
	return s
}

// HasFile reports whether an asset is attached.
func (s SoundConfig) HasFile() bool {
	return s.FileRef != ""
}

// Playable reports whether the sound is enabled and has an asset.
func (s SoundConfig) Playable() bool {
	return s.Enabled && s.HasFile()
}

// Normalize repairs the FileRef/DisplayName pairing on a hand-built value.
func (s SoundConfig) Normalize() SoundConfig {
	ref := strings.TrimSpace(s.FileRef)
	if ref == "" {
		return s.WithoutFile()
	}
	name := strings.TrimSpace(s.DisplayName)
	s.FileRef = ref
	if name == "" {
		name = filepath.Base(ref)
	}
	s.DisplayName = name
	return s
}

// IntervalConfig is a SoundConfig plus the alert period in seconds.
// A period of zero or less disables alerts.
type IntervalConfig struct {
	SoundConfig
	Period int
}

// Settings is an immutable snapshot of the user-facing options.
type Settings struct {
	Ambience     SoundConfig
	Interval     IntervalConfig
	KeepScreenOn bool
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Interval:     IntervalConfig{Period: DefaultPeriod},
		KeepScreenOn: true,
	}
}

// Normalize returns a copy with both sound configs repaired and a negative
// period raised to zero.
func (s Settings) Normalize() Settings {
	s.Ambience = s.Ambience.Normalize()
	s.Interval.SoundConfig = s.Interval.SoundConfig.Normalize()
	if s.Interval.Period < 0 {
		s.Interval.Period = 0
	}
	return s
}
