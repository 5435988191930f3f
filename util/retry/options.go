package retry

import "time"

type Options struct {
	RetryCount          int
	BackoffMultiplier   int
	BackoffDurationType time.Duration
	Message             string
	ShouldRetry         func(error) bool
}

type Option func(*Options)

func NewDefaultOptions() *Options {
	return &Options{
		RetryCount:          3,
		BackoffMultiplier:   2,
		BackoffDurationType: time.Second,
		ShouldRetry:         func(error) bool { return true },
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		o.RetryCount = count
	}
}

func WithBackoffMultiplier(multiplier int) Option {
	return func(o *Options) {
		o.BackoffMultiplier = multiplier
	}
}

func WithBackoffDurationType(d time.Duration) Option {
	return func(o *Options) {
		o.BackoffDurationType = d
	}
}

func WithMessage(message string) Option {
	return func(o *Options) {
		o.Message = message
	}
}

// WithShouldRetry stops retrying as soon as f returns false for an attempt's error.
func WithShouldRetry(f func(error) bool) Option {
	return func(o *Options) {
		o.ShouldRetry = f
	}
}
