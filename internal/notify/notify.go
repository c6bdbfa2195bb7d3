// Package notify produces the pulse cue on interval alerts and the desktop
// notification on completion.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
)

// Pattern alternates on and off durations, starting with on.
type Pattern []time.Duration

// AlertPattern buzzes twice: 100ms on, 50ms off, 100ms on.
var AlertPattern = Pattern{100 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond}

const defaultTitle = "tock"

// Notifier sends pulses and desktop notifications through beeep.
type Notifier struct {
	Pattern Pattern
	Freq    float64

	beep   func(freq float64, durationMillis int) error
	notify func(title, message string) error
	sleep  func(time.Duration)
}

// New returns a Notifier using the default alert pattern.
func New() *Notifier {
	return &Notifier{
		Pattern: AlertPattern,
		Freq:    beeep.DefaultFreq,
		beep:    beeep.Beep,
		notify:  desktopNotify,
		sleep:   time.Sleep,
	}
}

// Pulse plays the pattern. It blocks for the pattern's total length.
func (n *Notifier) Pulse() error {
	for i, d := range n.Pattern {
		if i%2 == 1 {
			n.sleep(d)
			continue
		}
		if err := n.beep(n.Freq, int(d/time.Millisecond)); err != nil {
			return fmt.Errorf("pulse: %w", err)
		}
	}
	return nil
}

// Completed sends a desktop notification.
func (n *Notifier) Completed(title, message string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultTitle
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = "Time is up"
	}
	if err := n.notify(title, message); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}
