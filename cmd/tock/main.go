package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/tock/internal/app"
	"github.com/five82/tock/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/tock/config.toml)")
	prefsPath := flag.String("prefs", "", "prefs file path (optional, defaults to ~/.config/tock/prefs.toml)")
	duration := flag.String("duration", "", `starting duration: seconds, "MM:SS", "HH:MM:SS" or "25m" (optional)`)
	logFile := flag.String("log", "", `log file path, "-" disables logging (optional)`)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogFile:    *logFile,
	}
	if *duration != "" {
		seconds, err := config.ParseDuration(*duration)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tock: %v\n", err)
			return 2
		}
		opts.Duration = seconds
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "tock: %v\n", err)
		return 1
	}
	return 0
}
