package clickhouse

import (
	"github.com/jonboulle/clockwork"

	"github.com/nitoqq/clickhouse-driver/internal/query/config"
	"github.com/nitoqq/clickhouse-driver/log"
	"github.com/nitoqq/clickhouse-driver/trace"
)

// Option contains configuration values for results
type Option = config.Option

// WithColumnTypes requests column names and types along with the data
func WithColumnTypes() Option {
	return config.WithColumnTypes()
}

// WithColumnar accumulates data column by column. NewIterResult ignores it.
func WithColumnar() Option {
	return config.WithColumnar()
}

// WithSkipEmptyChunks makes NewIterResult yield only chunks with rows.
// Header metadata is carried onto the first data chunk.
func WithSkipEmptyChunks() Option {
	return config.WithSkipEmptyChunks()
}

// WithQueryID sets the identifier reported in trace events
func WithQueryID(queryID string) Option {
	return config.WithQueryID(queryID)
}

// WithTrace appends result trace to early defined traces
func WithTrace(t trace.Result) Option {
	return config.WithTrace(&t)
}

// WithLogger adds logging of result events selected by details
func WithLogger(l log.Logger, details trace.Detailer, opts ...log.Option) Option {
	return config.WithLogger(l, details, opts...)
}

// WithClock overrides the clock used for logged latencies
func WithClock(clock clockwork.Clock) Option {
	return config.WithClock(clock)
}
