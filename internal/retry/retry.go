package retry

import (
	"context"
	"time"
)

type Operation func(ctx context.Context) error
type IsRetryableError func(error) bool

type Config struct {
	MaxRetries    int
	Delays        []time.Duration
	IsRetryableFn IsRetryableError
}

// DefaultDelays используются, когда задержки не заданы
var DefaultDelays = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// Do выполняет операцию, повторяя ее при повторяемых ошибках.
// Если попыток больше, чем задержек, используется последняя задержка.
func Do(ctx context.Context, cfg Config, op Operation) error {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	if len(cfg.Delays) == 0 {
		cfg.Delays = DefaultDelays
	}

	if cfg.IsRetryableFn == nil {
		cfg.IsRetryableFn = func(error) bool { return false }
	}

	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}

		if !cfg.IsRetryableFn(err) {
			return err
		}

		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		select {
		case <-time.After(delay(cfg.Delays, attempt)):
		case <-ctx.Done():
			return lastErr
		}
	}

	return lastErr
}

func delay(delays []time.Duration, attempt int) time.Duration {
	if attempt < len(delays) {
		return delays[attempt]
	}
	return delays[len(delays)-1]
}
