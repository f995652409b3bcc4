package config

import (
	"github.com/jonboulle/clockwork"

	"github.com/nitoqq/clickhouse-driver/log"
	"github.com/nitoqq/clickhouse-driver/trace"
)

type Option func(*Config)

func WithColumnTypes() Option {
	return func(c *Config) {
		c.withColumnTypes = true
	}
}

func WithColumnar() Option {
	return func(c *Config) {
		c.columnar = true
	}
}

// WithSkipEmptyChunks makes the streaming cursor yield only chunks with rows.
// Metadata of a header block is carried onto the next data chunk.
func WithSkipEmptyChunks() Option {
	return func(c *Config) {
		c.skipEmptyChunks = true
	}
}

// WithQueryID sets the query identifier. Empty id means a generated one.
func WithQueryID(queryID string) Option {
	return func(c *Config) {
		c.queryID = queryID
	}
}

// WithTrace appends result trace to early defined traces
func WithTrace(t *trace.Result) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(t)
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger logs result events selected by details.
// Latencies are measured with the clock set by WithClock.
func WithLogger(l log.Logger, details trace.Detailer, opts ...log.Option) Option {
	return func(c *Config) {
		c.logger = l
		c.loggerOpts = opts
		c.loggerDetails = details
	}
}
