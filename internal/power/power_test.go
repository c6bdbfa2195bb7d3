package power

import (
	"errors"
	"testing"
)

type fakeInhibitor struct {
	acquires   int
	releases   int
	acquireErr error
}

func (f *fakeInhibitor) Acquire(string) error {
	f.acquires++
	return f.acquireErr
}

func (f *fakeInhibitor) Release() error {
	f.releases++
	return nil
}

func TestLock_SetIsIdempotent(t *testing.T) {
	inh := &fakeInhibitor{}
	l := NewLock(inh, "countdown running")

	for i := 0; i < 3; i++ {
		if err := l.Set(true); err != nil {
			t.Fatalf("Set(true): %v", err)
		}
	}
	if !l.Held() || inh.acquires != 1 {
		t.Fatalf("held=%v acquires=%d, want true/1", l.Held(), inh.acquires)
	}

	for i := 0; i < 3; i++ {
		if err := l.Set(false); err != nil {
			t.Fatalf("Set(false): %v", err)
		}
	}
	if l.Held() || inh.releases != 1 {
		t.Fatalf("held=%v releases=%d, want false/1", l.Held(), inh.releases)
	}
}

func TestLock_AcquireFailureNotHeld(t *testing.T) {
	inh := &fakeInhibitor{acquireErr: errors.New("denied")}
	l := NewLock(inh, "")
	if err := l.Set(true); err == nil {
		t.Fatalf("expected error")
	}
	if l.Held() {
		t.Fatalf("lock reported held after failure")
	}
	_ = l.Set(true)
	if inh.acquires != 2 {
		t.Fatalf("acquires = %d, want a retry after a transient failure", inh.acquires)
	}
}

func TestLock_UnsupportedDisablesRetries(t *testing.T) {
	l := NewLock(unsupportedInhibitor{}, "")
	err := l.Set(true)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if err := l.Set(false); err != nil {
		t.Fatalf("Set(false) after unsupported: %v", err)
	}
	if err := l.Set(true); err != nil {
		t.Fatalf("disabled lock should stay quiet, got %v", err)
	}
}
