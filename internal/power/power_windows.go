package power

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var procSetThreadExecutionState = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetThreadExecutionState")

// executionStateInhibitor owns one OS thread, since the execution state set
// by SetThreadExecutionState belongs to the calling thread.
type executionStateInhibitor struct {
	requests chan stateRequest
}

type stateRequest struct {
	flags uint32
	done  chan error
}

func newInhibitor(string) Inhibitor {
	if err := procSetThreadExecutionState.Find(); err != nil {
		return unsupportedInhibitor{}
	}
	inh := &executionStateInhibitor{requests: make(chan stateRequest)}
	go inh.loop()
	return inh
}

func (w *executionStateInhibitor) loop() {
	runtime.LockOSThread()
	for req := range w.requests {
		prev, _, callErr := procSetThreadExecutionState.Call(uintptr(req.flags))
		if prev == 0 {
			req.done <- fmt.Errorf("SetThreadExecutionState: %w", callErr)
			continue
		}
		req.done <- nil
	}
}

func (w *executionStateInhibitor) set(flags uint32) error {
	done := make(chan error, 1)
	w.requests <- stateRequest{flags: flags, done: done}
	return <-done
}

func (w *executionStateInhibitor) Acquire(string) error {
	return w.set(esContinuous | esSystemRequired | esDisplayRequired)
}

func (w *executionStateInhibitor) Release() error {
	return w.set(esContinuous)
}
