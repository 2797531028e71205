package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a remote backend cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryDelay is the first backoff interval; a var so tests can shorten it.
var retryDelay = 100 * time.Millisecond

// Backoff retries an operation whose failures are marked Retryable, doubling
// the pause after every failed attempt.
type Backoff struct {
	Attempts int           // total tries, including the first; <1 means 1
	Delay    time.Duration // pause after the first failure
}

// Do runs fn until it succeeds, fails without the Retryable mark, runs out
// of attempts or ctx ends. The last error is returned.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for try := 1; ; try++ {
		if err = fn(); err == nil || !IsRetryable(err) || try == attempts {
			return err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}

// RetryWithBackoff runs fn with three attempts starting at 100ms.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Backoff{Attempts: 3, Delay: retryDelay}.Do(ctx, fn)
}
