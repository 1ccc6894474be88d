package creem

import (
	"context"
	"errors"
	"time"
)

const maxRetrySleep = 30 * time.Second

type retryPolicy struct {
	times int
	sleep time.Duration
}

func newRetryPolicy(times int, sleep time.Duration) retryPolicy {
	if times < 1 {
		times = 1
	}
	if sleep < 0 {
		sleep = 0
	}
	return retryPolicy{times: times, sleep: sleep}
}

// backoff returns the delay after the nth failed attempt: sleep * 2^(n-1), capped.
func (p retryPolicy) backoff(n int) time.Duration {
	d := p.sleep
	for i := 1; i < n; i++ {
		if d >= maxRetrySleep/2 {
			return maxRetrySleep
		}
		d *= 2
	}
	return min(d, maxRetrySleep)
}

func (p retryPolicy) wait(ctx context.Context, n int) error {
	d := p.backoff(n)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func transient(err error) error {
	return &transientError{err: err}
}

// isRetryable reports whether another attempt may succeed: transport failures,
// and gateway errors that carried no parseable error body.
func isRetryable(err error) bool {
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	if apiErr := AsAPIError(err); apiErr != nil {
		return apiErr.transient
	}
	return false
}
