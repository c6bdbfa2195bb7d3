package app

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/tock/internal/timer"
)

type blockingRunner struct {
	seen chan timer.Event
}

func (r *blockingRunner) Run(ctx context.Context, events <-chan timer.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			r.seen <- ev
		}
	}
}

func TestStartEffects_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &blockingRunner{seen: make(chan timer.Event, 1)}
	events := make(chan timer.Event, 1)

	done := StartEffects(ctx, runner, events)
	events <- timer.Event{Type: timer.EventTick}
	select {
	case ev := <-runner.seen:
		if ev.Type != timer.EventTick {
			t.Fatalf("event = %s, want tick", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner never received the event")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("done not closed after cancel")
	}
}

func TestStartEffects_StopsWhenEngineCloses(t *testing.T) {
	engine := timer.New(nil, timer.Options{})
	runner := &blockingRunner{seen: make(chan timer.Event, 8)}

	done := StartEffects(context.Background(), runner, engine.Subscribe(8))
	engine.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("done not closed after engine.Close")
	}
}

func TestResolveLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, _ := resolveLogFile("/var/log/tock.log", ""); got != "/var/log/tock.log" {
		t.Fatalf("no override = %q", got)
	}
	if got, _ := resolveLogFile("/var/log/tock.log", "-"); got != "" {
		t.Fatalf("dash override = %q, want empty", got)
	}
	got, err := resolveLogFile("", "~/tock.log")
	if err != nil {
		t.Fatalf("resolveLogFile: %v", err)
	}
	if got != filepath.Join(home, "tock.log") {
		t.Fatalf("tilde override = %q", got)
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix(log.Prefix())

	path := filepath.Join(t.TempDir(), "state", "tock.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	log.Printf("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q", data)
	}
}

func TestSetupLogging_EmptyDiscards(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	closeLog, err := setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	closeLog()
}
