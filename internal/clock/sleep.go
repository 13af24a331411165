// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// CancelOnSignal calls cancel when signal fires before ctx is done. The returned
// function stops the watcher and must be called once ctx is no longer used.
func CancelOnSignal(ctx context.Context, signal <-chan struct{}, cancel context.CancelFunc) func() {
	if signal == nil {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		case <-signal:
			cancel()
		}
	}()
	return func() { close(done) }
}
