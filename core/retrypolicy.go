package core

import "time"

// RetryPolicy bounds how request execution retries recoverable failures.
type RetryPolicy struct {
	// MaxAttempts is the total attempt budget, first try included.
	MaxAttempts int

	// BaseBackoff is the initial backoff interval for recoverable errors
	// that carry no server-requested wait.
	BaseBackoff time.Duration

	// MaxInterval caps the backoff growth.
	MaxInterval time.Duration
}

// DefaultRetryPolicy mirrors the executor defaults: modest budget, fast
// first retry.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 4,
		BaseBackoff: 250 * time.Millisecond,
		MaxInterval: 10 * time.Second,
	}
}

// NoRetry performs a single attempt; callers that delegate retries to an
// outer executor use this.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1, BaseBackoff: 250 * time.Millisecond, MaxInterval: 10 * time.Second}
}
