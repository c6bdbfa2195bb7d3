package app

import (
	"context"

	"github.com/five82/tock/internal/timer"
)

const effectsBuffer = 64

// eventRunner consumes engine events until the channel closes or ctx ends.
type eventRunner interface {
	Run(ctx context.Context, events <-chan timer.Event)
}

// StartEffects launches a background goroutine that feeds engine events to
// runner. The returned channel closes once runner has returned.
func StartEffects(ctx context.Context, runner eventRunner, events <-chan timer.Event) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		runner.Run(ctx, events)
	}()
	return done
}
