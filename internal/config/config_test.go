package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/tock/internal/settings"
	"github.com/five82/tock/internal/timer"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DurationSeconds != timer.DefaultSeconds {
		t.Fatalf("DurationSeconds = %d, want %d", cfg.DurationSeconds, timer.DefaultSeconds)
	}
	if cfg.Settings != settings.Default() {
		t.Fatalf("Settings = %#v, want defaults", cfg.Settings)
	}
	if !cfg.NotifyOnComplete {
		t.Fatalf("NotifyOnComplete = false, want true")
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(""); err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "config.toml", `
duration = "25m"
keep_screen_on = false
notify_on_complete = false
log_file = "  ~/logs/tock.log  "
volume = -1.5

[ambience]
enabled = true
file = "~/sounds/rain.ogg"

[interval]
enabled = true
file = "/opt/sounds/bell.wav"
period = 120
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DurationSeconds != 1500 {
		t.Fatalf("DurationSeconds = %d, want 1500", cfg.DurationSeconds)
	}
	if cfg.Settings.KeepScreenOn || cfg.NotifyOnComplete {
		t.Fatalf("booleans not applied: %#v", cfg)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "tock.log") {
		t.Fatalf("LogFile = %q, want under HOME", cfg.LogFile)
	}
	if cfg.Volume != -1.5 {
		t.Fatalf("Volume = %v, want -1.5", cfg.Volume)
	}

	amb := cfg.Settings.Ambience
	if !amb.Enabled || !strings.HasPrefix(amb.FileRef, home) || amb.DisplayName != "rain.ogg" {
		t.Fatalf("Ambience = %#v", amb)
	}
	iv := cfg.Settings.Interval
	if !iv.Enabled || iv.FileRef != "/opt/sounds/bell.wav" || iv.DisplayName != "bell.wav" || iv.Period != 120 {
		t.Fatalf("Interval = %#v", iv)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "config.yaml", `
duration: 90
interval:
  enabled: true
  period: 15
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DurationSeconds != 90 {
		t.Fatalf("DurationSeconds = %d, want 90", cfg.DurationSeconds)
	}
	if !cfg.Settings.Interval.Enabled || cfg.Settings.Interval.Period != 15 {
		t.Fatalf("Interval = %#v", cfg.Settings.Interval)
	}
	if cfg.Settings.Interval.HasFile() {
		t.Fatalf("interval file should be unset")
	}
	if !cfg.Settings.KeepScreenOn {
		t.Fatalf("KeepScreenOn should keep its default")
	}
}

func TestLoad_ClampsValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "config.toml", `
duration = 999999

[interval]
period = -3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DurationSeconds != timer.MaxSeconds {
		t.Fatalf("DurationSeconds = %d, want %d", cfg.DurationSeconds, timer.MaxSeconds)
	}
	if cfg.Settings.Interval.Period != 0 {
		t.Fatalf("Period = %d, want 0", cfg.Settings.Interval.Period)
	}
}

func TestDurationValue_OutOfRange(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"max uint64", uint64(math.MaxUint64), timer.MaxSeconds},
		{"uint64 above int64", uint64(math.MaxInt64) + 1, timer.MaxSeconds},
		{"small uint64", uint64(90), 90},
		{"max int64", int64(math.MaxInt64), timer.MaxSeconds},
		{"min int64", int64(math.MinInt64), 0},
		{"huge float", 1e300, timer.MaxSeconds},
		{"huge negative float", -1e300, 0},
		{"inf", math.Inf(1), timer.MaxSeconds},
		{"fractional float", 90.9, 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := durationValue(tc.in)
			if err != nil {
				t.Fatalf("durationValue(%v) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("durationValue(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}

	if _, err := durationValue(math.NaN()); err == nil {
		t.Fatalf("durationValue(NaN) returned no error")
	}
}

func TestLoad_HugeDurationClamps(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "config.toml", "duration = 9223372036854775807\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DurationSeconds != timer.MaxSeconds {
		t.Fatalf("DurationSeconds = %d, want %d", cfg.DurationSeconds, timer.MaxSeconds)
	}
}

func TestLoad_DashDisablesLogFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(writeConfig(t, "config.toml", `log_file = "-"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_InvalidFilesError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := map[string]string{
		"config.toml": "not valid toml {{{",
		"bad.yaml":    "interval: [unterminated",
		"dur.toml":    `duration = "soon"`,
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, name, body)); err == nil {
			t.Errorf("Load(%s) returned nil error", name)
		} else if !strings.Contains(err.Error(), "parse config") {
			t.Errorf("Load(%s) error = %v, want parse config prefix", name, err)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"90", 90, false},
		{" 300 ", 300, false},
		{"-5", 0, false},
		{"25:00", 1500, false},
		{"1:30:00", 5400, false},
		{"1h30m", 5400, false},
		{"1500ms", 1, false},
		{"200h", timer.MaxSeconds, false},
		{"", 0, true},
		{"1:2:3:4", 0, true},
		{"a:b", 0, true},
		{"soon", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDuration(%q) = %d, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuration(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/x/y.wav")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "x", "y.wav") {
		t.Fatalf("ExpandPath = %q", got)
	}
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath blank should fail")
	}
}
