package config

import (
	"github.com/jonboulle/clockwork"

	"github.com/nitoqq/clickhouse-driver/log"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/trace"
)

type Config struct {
	withColumnTypes bool
	columnar        bool
	skipEmptyChunks bool

	queryID string

	trace *trace.Result

	logger        log.Logger
	loggerOpts    []log.Option
	loggerDetails trace.Detailer

	clock clockwork.Clock
}

func New(opts ...Option) *Config {
	c := defaults()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.queryID == "" {
		c.queryID = query.NewQueryID()
	}
	if c.logger != nil {
		// logger latencies follow the configured clock unless overridden by loggerOpts
		opts := append([]log.Option{log.WithClock(c.clock)}, c.loggerOpts...)
		c.trace = c.trace.Compose(log.Result(c.logger, c.loggerDetails, opts...))
	}

	return c
}

func defaults() *Config {
	return &Config{
		clock: clockwork.NewRealClock(),
		trace: &trace.Result{},
	}
}

// WithColumnTypes reports whether column metadata is returned with the data
func (c *Config) WithColumnTypes() bool {
	return c.withColumnTypes
}

// Columnar reports whether blocks are accumulated column-wise.
// The streaming cursor ignores it.
func (c *Config) Columnar() bool {
	return c.columnar
}

// SkipEmptyChunks reports whether the streaming cursor swallows packets which carry no rows
func (c *Config) SkipEmptyChunks() bool {
	return c.skipEmptyChunks
}

// QueryID identifies the query in trace events
func (c *Config) QueryID() string {
	return c.queryID
}

// Trace defines trace over result calls
func (c *Config) Trace() *trace.Result {
	return c.trace
}

// Clock defines clock
func (c *Config) Clock() clockwork.Clock {
	return c.clock
}
