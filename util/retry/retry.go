package retry

import (
	"context"
	"time"

	"github.com/dymensionxyz/kaspa-validator/ulogger"
)

// sleepFunc is swapped out by tests.
var sleepFunc = func(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Retry calls f until it succeeds, the retry count is exhausted, ShouldRetry rejects the error or ctx is done.
// Parameters:
// ctx: The context that controls the retry loop
// logger: The logger used for retry messages
// f: The function to call
// opts: Retry count, backoff and message options
// Returns:
// T: The result of the last call to f
// error: The last error returned by f, or the context error if ctx was cancelled
func Retry[T any](ctx context.Context, logger ulogger.Logger, f func() (T, error), opts ...Option) (T, error) {
	options := NewDefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var (
		result T
		err    error
	)

	attempts := options.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result, err = f()
		if err == nil {
			return result, nil
		}

		if !options.ShouldRetry(err) || i == attempts-1 {
			break
		}

		if options.Message != "" {
			logger.Warnf("%s (attempt %d/%d): %v", options.Message, i+1, attempts, err)
		}

		if sleepErr := BackoffAndSleep(ctx, i, options.BackoffMultiplier, options.BackoffDurationType); sleepErr != nil {
			return result, sleepErr
		}
	}

	return result, err
}

// BackoffAndSleep sleeps for ((backoffMultiplier*retries)+1) * durationType, returning early when ctx is done.
func BackoffAndSleep(ctx context.Context, retries int, backoffMultiplier int, durationType time.Duration) error {
	backoff := (backoffMultiplier * retries) + 1
	backoffPeriod := time.Duration(backoff) * durationType

	return sleepFunc(ctx, backoffPeriod)
}
