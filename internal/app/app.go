package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tock/internal/audio"
	"github.com/five82/tock/internal/config"
	"github.com/five82/tock/internal/effects"
	"github.com/five82/tock/internal/notify"
	"github.com/five82/tock/internal/power"
	"github.com/five82/tock/internal/prefs"
	"github.com/five82/tock/internal/settings"
	"github.com/five82/tock/internal/timer"
	"github.com/five82/tock/internal/ui"
)

const (
	appName       = "tock"
	wakeReason    = "countdown running"
	uiEventBuffer = 16
)

// Options configure the tock application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tock/prefs.toml
	Duration   int    // seconds; zero keeps the configured duration
	LogFile    string // empty keeps the configured file, "-" disables logging
}

// Run boots the tock TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Duration > 0 {
		cfg.DurationSeconds = timer.Clamp(opts.Duration)
	}

	logPath, err := resolveLogFile(cfg.LogFile, opts.LogFile)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("prefs: %v", err)
	}

	store := settings.NewStore(cfg.Settings)
	engine := timer.New(store, timer.Options{InitialSeconds: cfg.DurationSeconds})
	defer engine.Close()

	player := audio.NewPlayer(audio.Options{Volume: cfg.Volume})
	defer player.Close()

	router := effects.NewRouter(effects.Options{
		Source:           store,
		Player:           player,
		Cues:             notify.New(),
		WakeLock:         power.NewLock(power.NewInhibitor(appName), wakeReason),
		NotifyOnComplete: cfg.NotifyOnComplete,
	})

	// Subscribe before the UI can start the engine so no event is missed.
	done := StartEffects(ctx, router, engine.Subscribe(effectsBuffer))
	uiEvents := engine.Subscribe(uiEventBuffer)

	log.Printf("tock: session started with %ds", cfg.DurationSeconds)
	err = ui.Run(ui.Options{
		Context:           ctx,
		Timer:             engine,
		Settings:          store,
		Events:            uiEvents,
		ThemeName:         userPrefs.Theme,
		PrefsPath:         opts.PrefsPath,
		LogPath:           logPath,
		OnSettingsChanged: router.SettingsChanged,
	})

	// Closing the engine ends the router, which stops ambience and releases
	// the wake lock on its way out.
	engine.Close()
	<-done
	log.Printf("tock: session ended")

	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// resolveLogFile applies the -log override to the configured log file.
func resolveLogFile(configured, override string) (string, error) {
	switch override {
	case "":
		return configured, nil
	case "-":
		return "", nil
	}
	return config.ExpandPath(override)
}

// setupLogging routes the standard logger to path. The terminal belongs to
// the UI, so an empty path discards log output instead of writing to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := tea.LogToFile(path, appName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = file.Close() }, nil
}
