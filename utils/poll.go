package utils

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned by WaitFor when the timeout elapses before check succeeds.
var ErrTimeout = errors.New("timeout")

// WaitFor calls check immediately, then again after each interval of sleep,
// until it returns (true, nil) or a non-nil error. The deadline is checked
// after every call, so a check that succeeds after the last sleep still wins.
// An unsuccessful call made after timeout has elapsed yields an error wrapping
// ErrTimeout; cancellation of ctx yields ctx.Err().
func WaitFor(ctx context.Context, timeout, interval time.Duration, check func() (done bool, err error)) error {
	start := time.Now()
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		done, err := check()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if time.Since(start) > timeout {
			return fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		timer.Reset(interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
