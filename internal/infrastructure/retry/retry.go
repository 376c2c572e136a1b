// Package retry provides a generic bounded-retry mechanism with backoff.
package retry

import (
	"context"
	"errors"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int

	// Delay is the wait between attempts.
	Delay time.Duration

	// Multiplier is the factor by which the delay grows after each attempt.
	// A value of 1.0 keeps the delay fixed.
	Multiplier float64

	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration

	// RetryIf is an optional predicate to decide if an error is retryable.
	// If nil, all errors are retried.
	RetryIf func(error) bool
}

// FlightSearchConfig is the contractual retry profile for flight lookups:
// three attempts with a fixed one-second delay.
var FlightSearchConfig = Config{
	MaxAttempts: 3,
	Delay:       1 * time.Second,
	Multiplier:  1.0,
	MaxDelay:    1 * time.Second,
}

// DefaultConfig provides sensible defaults for other external calls.
var DefaultConfig = Config{
	MaxAttempts: 3,
	Delay:       200 * time.Millisecond,
	Multiplier:  2.0,
	MaxDelay:    2 * time.Second,
}

// Do executes fn with retry logic. It returns nil on the first success, or
// the last error once attempts are exhausted. Context cancellation aborts
// both the wait and any further attempts.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult executes a value-returning function with retry logic.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.Delay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		sleep := delay
		if cfg.MaxDelay > 0 && sleep > cfg.MaxDelay {
			sleep = cfg.MaxDelay
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleep):
		}

		if cfg.Multiplier > 0 {
			delay = time.Duration(float64(delay) * cfg.Multiplier)
		}
	}

	return result, lastErr
}

// Permanent wraps an error to mark it as not worth retrying.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that stops on permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}
