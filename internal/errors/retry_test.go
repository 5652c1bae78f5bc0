package errors

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackoff() Backoff {
	return Backoff{Attempts: 3, Initial: time.Millisecond, Max: 2 * time.Millisecond, Multiplier: 2}
}

func TestRetry_SucceedsAfterLockReleased(t *testing.T) {
	// Given: a results file locked for the first two calls
	calls := 0
	fn := func() error {
		calls++
		if calls < 3 {
			return New(ErrCodeResourceLocked, "results file is locked", nil)
		}
		return nil
	}

	// When
	err := Retry(context.Background(), fastBackoff(), fn)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	want := New(ErrCodeFilePermission, "permission denied", nil)

	err := Retry(context.Background(), fastBackoff(), func() error {
		calls++
		return want
	})

	assert.Same(t, want, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_ReturnsLastErrorWhenExhausted(t *testing.T) {
	calls := 0

	err := Retry(context.Background(), fastBackoff(), func() error {
		calls++
		return New(ErrCodeResourceLocked, "still locked", nil)
	})

	require.Error(t, err)
	assert.Equal(t, ErrCodeResourceLocked, GetCode(err))
	assert.Equal(t, 3, calls)
}

func TestRetry_ContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := Backoff{Attempts: 5, Initial: time.Hour, Max: time.Hour, Multiplier: 1}

	err := Retry(ctx, b, func() error {
		cancel()
		return New(ErrCodeResourceLocked, "locked", nil)
	})

	assert.True(t, stderrors.Is(err, context.Canceled))
}

func TestRetry_ZeroAttemptsCallsOnce(t *testing.T) {
	calls := 0

	_ = Retry(context.Background(), Backoff{}, func() error {
		calls++
		return New(ErrCodeResourceLocked, "locked", nil)
	})

	assert.Equal(t, 1, calls)
}

func TestDefaultBackoff(t *testing.T) {
	b := DefaultBackoff()

	assert.Equal(t, 4, b.Attempts)
	assert.Equal(t, 100*time.Millisecond, b.Initial)
	assert.LessOrEqual(t, b.Initial, b.Max)
}
