package log

import (
	"github.com/jonboulle/clockwork"
)

type options struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock
}

type Option func(o *options)

func newOptions(opts ...Option) options {
	o := options{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func WithColoring() Option {
	return func(o *options) {
		o.coloring = true
	}
}

func WithMinLevel(level Level) Option {
	return func(o *options) {
		o.minLevel = level
	}
}

// WithClock sets the clock used for timestamps and latencies
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}
