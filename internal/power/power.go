// Package power keeps the display awake while a countdown runs.
package power

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnsupported indicates no wake lock facility is available on this system.
var ErrUnsupported = errors.New("wake lock unsupported")

// Inhibitor is a platform facility that prevents the display from sleeping.
type Inhibitor interface {
	Acquire(reason string) error
	Release() error
}

// NewInhibitor returns the platform-specific inhibitor.
func NewInhibitor(appName string) Inhibitor {
	return newInhibitor(appName)
}

// Lock tracks whether the wake lock is held so callers can state the desired
// value repeatedly. Once the platform reports ErrUnsupported the lock stops
// trying.
type Lock struct {
	mu        sync.Mutex
	inhibitor Inhibitor
	reason    string
	held      bool
	disabled  bool
}

// NewLock wraps inhibitor.
func NewLock(inhibitor Inhibitor, reason string) *Lock {
	return &Lock{inhibitor: inhibitor, reason: reason}
}

// Set acquires or releases the lock so that it ends up held iff want.
func (l *Lock) Set(want bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || want == l.held {
		return nil
	}
	if want {
		if err := l.inhibitor.Acquire(l.reason); err != nil {
			if errors.Is(err, ErrUnsupported) {
				l.disabled = true
			}
			return fmt.Errorf("acquire wake lock: %w", err)
		}
		l.held = true
		return nil
	}

	l.held = false
	if err := l.inhibitor.Release(); err != nil {
		return fmt.Errorf("release wake lock: %w", err)
	}
	return nil
}

// Held reports whether the lock is currently held.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}

type unsupportedInhibitor struct{}

func (unsupportedInhibitor) Acquire(string) error { return ErrUnsupported }

func (unsupportedInhibitor) Release() error { return nil }
