// Package schedule runs recurring jobs that stop on context cancellation.
package schedule

import (
	"context"
	"time"
)

// Func is a recurring job. Returning done=true stops the loop cleanly;
// returning an error stops it and hands the error back to the caller.
type Func func(ctx context.Context) (done bool, err error)

// Every calls fn every d until fn is done, fails, or ctx is cancelled.
// The first call happens after d has elapsed.
func Every(ctx context.Context, d time.Duration, fn Func) error {
	return Run(ctx, func() time.Duration { return d }, fn)
}

// Run calls fn after each delay returned by next, so the interval can
// shrink as a deadline approaches. A non-positive delay runs fn immediately.
// On cancellation Run returns the context's cause.
func Run(ctx context.Context, next func() time.Duration, fn Func) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return context.Cause(ctx)
		}

		delay := next()
		if delay > 0 {
			timer.Reset(delay)
			select {
			case <-ctx.Done():
				return context.Cause(ctx)
			case <-timer.C:
			}
		}

		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
