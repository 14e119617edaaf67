package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTemporary = errors.New("temporary")

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries:    maxRetries,
		Delays:        []time.Duration{time.Millisecond},
		IsRetryableFn: func(err error) bool { return errors.Is(err, errTemporary) },
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTemporary
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ReturnsLastErrorAfterRetries(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(2), func(ctx context.Context) error {
		calls++
		return errTemporary
	})

	assert.ErrorIs(t, err, errTemporary)
	assert.Equal(t, 3, calls)
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, fastConfig(2), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestDelay_UsesLastDelay(t *testing.T) {
	delays := []time.Duration{time.Second, 2 * time.Second}
	assert.Equal(t, time.Second, delay(delays, 0))
	assert.Equal(t, 2*time.Second, delay(delays, 1))
	assert.Equal(t, 2*time.Second, delay(delays, 5))
}
