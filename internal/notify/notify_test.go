package notify

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

type recorder struct {
	calls []string
}

func newTestNotifier(r *recorder, beepErr error) *Notifier {
	n := New()
	n.beep = func(_ float64, ms int) error {
		r.calls = append(r.calls, "on "+time.Duration(ms*int(time.Millisecond)).String())
		return beepErr
	}
	n.sleep = func(d time.Duration) {
		r.calls = append(r.calls, "off "+d.String())
	}
	n.notify = func(title, message string) error {
		r.calls = append(r.calls, title+": "+message)
		return nil
	}
	return n
}

func TestPulse_FollowsPattern(t *testing.T) {
	r := &recorder{}
	if err := newTestNotifier(r, nil).Pulse(); err != nil {
		t.Fatalf("Pulse: %v", err)
	}
	want := []string{"on 100ms", "off 50ms", "on 100ms"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestPulse_StopsOnError(t *testing.T) {
	r := &recorder{}
	err := newTestNotifier(r, errors.New("no beeper")).Pulse()
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(r.calls) != 1 {
		t.Fatalf("calls = %v, want a single attempt", r.calls)
	}
}

func TestCompleted_Defaults(t *testing.T) {
	r := &recorder{}
	if err := newTestNotifier(r, nil).Completed("  ", ""); err != nil {
		t.Fatalf("Completed: %v", err)
	}
	if want := []string{"tock: Time is up"}; !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}
