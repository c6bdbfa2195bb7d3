package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/tock/internal/settings"
	"github.com/five82/tock/internal/timer"
)

// Config captures the startup defaults for a tock session.
type Config struct {
	DurationSeconds  int
	Settings         settings.Settings
	NotifyOnComplete bool
	LogFile          string
	Volume           float64
}

const (
	defaultConfigPath = "~/.config/tock/config.toml"
	defaultLogFile    = "~/.local/state/tock/tock.log"
)

type fileSound struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	File    string `toml:"file" yaml:"file"`
	Period  *int   `toml:"period" yaml:"period"`
}

type fileConfig struct {
	Duration         any       `toml:"duration" yaml:"duration"`
	KeepScreenOn     *bool     `toml:"keep_screen_on" yaml:"keep_screen_on"`
	NotifyOnComplete *bool     `toml:"notify_on_complete" yaml:"notify_on_complete"`
	LogFile          string    `toml:"log_file" yaml:"log_file"`
	Volume           float64   `toml:"volume" yaml:"volume"`
	Ambience         fileSound `toml:"ambience" yaml:"ambience"`
	Interval         fileSound `toml:"interval" yaml:"interval"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DurationSeconds:  timer.DefaultSeconds,
		Settings:         settings.Default(),
		NotifyOnComplete: true,
		LogFile:          mustExpand(defaultLogFile),
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path, falling back to defaults when it is missing.
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := apply(&cfg, raw); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func apply(cfg *Config, raw fileConfig) error {
	if raw.Duration != nil {
		seconds, err := durationValue(raw.Duration)
		if err != nil {
			return fmt.Errorf("parse config: duration: %w", err)
		}
		cfg.DurationSeconds = seconds
	}
	if raw.KeepScreenOn != nil {
		cfg.Settings.KeepScreenOn = *raw.KeepScreenOn
	}
	if raw.NotifyOnComplete != nil {
		cfg.NotifyOnComplete = *raw.NotifyOnComplete
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		if logFile == "-" {
			cfg.LogFile = ""
		} else {
			cfg.LogFile = mustExpand(logFile)
		}
	}
	cfg.Volume = raw.Volume

	cfg.Settings.Ambience = soundConfig(raw.Ambience)
	cfg.Settings.Interval.SoundConfig = soundConfig(raw.Interval)
	if raw.Interval.Period != nil {
		cfg.Settings.Interval.Period = *raw.Interval.Period
	}
	cfg.Settings = cfg.Settings.Normalize()
	return nil
}

func soundConfig(raw fileSound) settings.SoundConfig {
	sound := settings.SoundConfig{Enabled: raw.Enabled}
	if file := strings.TrimSpace(raw.File); file != "" {
		sound = sound.WithFile(mustExpand(file))
	}
	return sound
}

func durationValue(v any) (int, error) {
	switch value := v.(type) {
	case int64:
		return clampSeconds(value), nil
	case int:
		return timer.Clamp(value), nil
	case uint64:
		if value > timer.MaxSeconds {
			return timer.MaxSeconds, nil
		}
		return int(value), nil
	case float64:
		switch {
		case math.IsNaN(value):
			return 0, fmt.Errorf("duration is not a number")
		case value > timer.MaxSeconds:
			return timer.MaxSeconds, nil
		case value < 0:
			return 0, nil
		}
		return int(value), nil
	case string:
		return ParseDuration(value)
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

// clampSeconds bounds v before narrowing it to int.
func clampSeconds(v int64) int {
	switch {
	case v > timer.MaxSeconds:
		return timer.MaxSeconds
	case v < 0:
		return 0
	}
	return int(v)
}

// ParseDuration accepts plain seconds ("90"), clock notation ("1:30:00",
// "25:00") or a Go duration ("1h30m"). The result is clamped to the range
// the timer can show.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return timer.Clamp(n), nil
	}
	if strings.Contains(s, ":") {
		return parseClock(s)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return timer.Clamp(int(d / time.Second)), nil
}

func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q: too many fields", s)
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total = total*60 + n
	}
	return timer.Clamp(total), nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
