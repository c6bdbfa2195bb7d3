package effects

import (
	"context"
	"log"

	"github.com/five82/tock/internal/display"
	"github.com/five82/tock/internal/settings"
	"github.com/five82/tock/internal/timer"
)

// Player plays ambience and interval sounds.
type Player interface {
	StartAmbience(ref string) error
	PauseAmbience()
	StopAmbience()
	PlayInterval(ref string) error
}

// Cues emits the pulse on alerts and the completion notification.
type Cues interface {
	Pulse() error
	Completed(title, message string) error
}

// WakeLock is held while the display must stay on.
type WakeLock interface {
	Set(held bool) error
}

// SettingsSource supplies the current settings.
type SettingsSource interface {
	Settings() settings.Settings
}

// Options configure a Router.
type Options struct {
	Source           SettingsSource
	Player           Player
	Cues             Cues
	WakeLock         WakeLock
	NotifyOnComplete bool
}

// Router turns engine events into adapter calls. Adapter failures are logged
// and never reach the engine.
type Router struct {
	opts    Options
	running bool
	paused  bool
	refresh chan struct{}
}

// NewRouter creates a Router. Nil adapters are skipped.
func NewRouter(opts Options) *Router {
	return &Router{
		opts:    opts,
		refresh: make(chan struct{}, 1),
	}
}

// SettingsChanged asks the router to re-apply ambience and wake lock rules
// against freshly replaced settings.
func (r *Router) SettingsChanged() {
	select {
	case r.refresh <- struct{}{}:
	default:
	}
}

// Run consumes events until the channel closes or ctx is cancelled. On the
// way out it stops the ambience and releases the wake lock.
func (r *Router) Run(ctx context.Context, events <-chan timer.Event) {
	defer func() {
		r.running = false
		r.paused = false
		r.reconcile()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.refresh:
			r.reconcile()
		case ev, ok := <-events:
			if !ok {
				return
			}
			r.handle(ev)
		}
	}
}

func (r *Router) handle(ev timer.Event) {
	switch ev.Type {
	case timer.EventEnteredRunning:
		r.running = true
		r.paused = false
		log.Printf("run %s: started at %s", ev.RunID, display.Clock(display.Split(ev.State.Remaining), false))
		r.reconcile()
	case timer.EventLeftRunning:
		r.running = false
		r.paused = ev.State.Status == timer.StatusPaused
		log.Printf("run %s: left running (%s)", ev.RunID, ev.State.Status)
		r.reconcile()
	case timer.EventReset:
		r.running = false
		r.paused = false
		r.reconcile()
	case timer.EventAlert:
		r.alert(ev)
	case timer.EventCompleted:
		r.completed(ev)
	}
}

func (r *Router) alert(ev timer.Event) {
	if r.opts.Cues != nil {
		if err := r.opts.Cues.Pulse(); err != nil {
			log.Printf("effects: %v", err)
		}
	}
	if r.opts.Player == nil || r.opts.Source == nil {
		return
	}
	interval := r.opts.Source.Settings().Interval
	if !interval.Playable() {
		return
	}
	if err := r.opts.Player.PlayInterval(interval.FileRef); err != nil {
		log.Printf("effects: interval sound at %ds: %v", ev.Elapsed, err)
	}
}

func (r *Router) completed(ev timer.Event) {
	log.Printf("run %s: completed after %ds", ev.RunID, ev.Elapsed)
	if !r.opts.NotifyOnComplete || r.opts.Cues == nil {
		return
	}
	message := display.Clock(display.Split(ev.State.Initial), false) + " countdown finished"
	if err := r.opts.Cues.Completed("tock", message); err != nil {
		log.Printf("effects: %v", err)
	}
}

// reconcile applies the level-triggered rules: ambience plays and the wake
// lock is held only while running with the respective option on. A paused
// countdown holds the ambience at its position; idle stops it.
func (r *Router) reconcile() {
	var current settings.Settings
	if r.opts.Source != nil {
		current = r.opts.Source.Settings()
	}

	if r.opts.Player != nil {
		if r.running && current.Ambience.Playable() {
			if err := r.opts.Player.StartAmbience(current.Ambience.FileRef); err != nil {
				log.Printf("effects: ambience: %v", err)
			}
		} else if r.paused && current.Ambience.Playable() {
			r.opts.Player.PauseAmbience()
		} else {
			r.opts.Player.StopAmbience()
		}
	}

	if r.opts.WakeLock != nil {
		if err := r.opts.WakeLock.Set(r.running && current.KeepScreenOn); err != nil {
			log.Printf("effects: %v", err)
		}
	}
}
