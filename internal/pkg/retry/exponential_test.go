package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRetrier(maxRetries int) (*Retrier, *[]time.Duration) {
	var delays []time.Duration
	r := New(Config{
		MaxRetries: maxRetries,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   300 * time.Millisecond,
		Multiplier: 2,
	})
	r.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return ctx.Err()
	}
	return r, &delays
}

func TestExecute(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		r, delays := newTestRetrier(5)
		calls := 0

		err := r.Execute(context.Background(), "postgres", func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
	})

	t.Run("gives up and wraps the last error", func(t *testing.T) {
		r, delays := newTestRetrier(3)
		cause := errors.New("connection refused")

		err := r.Execute(context.Background(), "redis", func(ctx context.Context) error {
			return cause
		})

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "redis: retry limit exceeded after 4 attempts")
		// delays are capped at MaxDelay
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, *delays)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		r, _ := newTestRetrier(3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := r.Execute(ctx, "nats", func(ctx context.Context) error {
			return errors.New("unreachable")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
