package client

import (
	"context"
	"errors"
	"time"
)

// ErrorClass groups API failures by how the client should react to them.
type ErrorClass int

const (
	// ClassPermanent is a request the server understood and rejected;
	// repeating it will not help.
	ClassPermanent ErrorClass = iota
	// ClassAuth is an authentication or authorization rejection. Never
	// retried: the credentials will not get better on their own.
	ClassAuth
	// ClassTransient is a failure that may clear up: network errors,
	// timeouts, throttling, server errors.
	ClassTransient
)

// Classify maps an error to its retry class. Errors that are not
// APIErrors are network-level failures and count as transient.
func Classify(err error) ErrorClass {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return ClassTransient
	}
	switch {
	case apiErr.Status == 401 || apiErr.Status == 403:
		return ClassAuth
	case apiErr.Status == 408 || apiErr.Status == 429 || apiErr.Status >= 500:
		return ClassTransient
	default:
		return ClassPermanent
	}
}

// RetryPolicy is the single retry behavior shared by every client
// operation: bounded attempts with exponential backoff, applied only to
// transient failures.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryPolicy retries transient failures twice more after the
// first attempt, backing off from 500ms and capping at 30s.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:  3,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     30 * time.Second,
}

// Delay returns the backoff before the given zero-based retry attempt:
// InitialDelay doubled per attempt, capped at MaxDelay.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	delay := p.InitialDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay > p.MaxDelay {
			return p.MaxDelay
		}
	}
	if delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// Do runs fn, retrying transient failures up to MaxAttempts total
// attempts. Auth-class and permanent failures return immediately.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if Classify(err) != ClassTransient || attempt == attempts-1 {
			return err
		}
		select {
		case <-time.After(p.Delay(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
