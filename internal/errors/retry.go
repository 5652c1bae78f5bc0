package errors

import (
	"context"
	"time"
)

// Backoff configures Retry.
type Backoff struct {
	// Attempts is the total number of calls, including the first.
	Attempts int
	// Initial is the wait before the second call.
	Initial time.Duration
	// Max caps the wait between calls.
	Max time.Duration
	// Multiplier grows the wait after every failed call.
	Multiplier float64
}

// DefaultBackoff suits short local contention such as a results file
// locked by a concurrent amankeys run: 4 calls over about 700ms.
func DefaultBackoff() Backoff {
	return Backoff{
		Attempts:   4,
		Initial:    100 * time.Millisecond,
		Max:        time.Second,
		Multiplier: 2,
	}
}

// Retry calls fn until it succeeds, returns an error that is not
// retryable (see IsRetryable), or runs out of attempts. The last error is
// returned unchanged. Cancelling ctx while waiting returns ctx.Err().
func Retry(ctx context.Context, b Backoff, fn func() error) error {
	attempts := max(b.Attempts, 1)
	wait := b.Initial

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			wait = min(time.Duration(float64(wait)*b.Multiplier), b.Max)
		}

		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
	}
	return err
}
