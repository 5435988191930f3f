package validator

// DefaultHubQueryConcurrency bounds the number of in-flight hub dispatch queries per batch.
const DefaultHubQueryConcurrency = 16

type Options struct {
	hubQueryConcurrency int
	sighashPolicy       *SighashPolicy
	hubHeight           *uint64
}

// Option is a function that sets some option on the Options struct
type Option func(*Options)

func NewDefaultOptions() *Options {
	return &Options{
		hubQueryConcurrency: DefaultHubQueryConcurrency,
		sighashPolicy:       DefaultSighashPolicy(),
	}
}

func ProcessOptions(opts ...Option) *Options {
	options := NewDefaultOptions()
	for _, o := range opts {
		o(options)
	}

	return options
}

// WithHubQueryConcurrency sets how many dispatch queries may run at once. Values below 1 are ignored.
func WithHubQueryConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.hubQueryConcurrency = n
		}
	}
}

func WithSighashPolicy(p *SighashPolicy) Option {
	return func(o *Options) {
		if p != nil {
			o.sighashPolicy = p
		}
	}
}

// WithHubHeight pins the withdrawal status query to a hub height.
func WithHubHeight(height uint64) Option {
	return func(o *Options) {
		o.hubHeight = &height
	}
}
