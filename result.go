package clickhouse

import (
	internalQuery "github.com/nitoqq/clickhouse-driver/internal/query"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
)

// NewResult makes a result which drains source on the first GetResult call.
//
// Blocks are accumulated row by row, or column by column with WithColumnar.
func NewResult(source packet.Source, opts ...Option) query.Result {
	return internalQuery.NewResult(source, opts...)
}

// NewProgressResult makes a cursor over the cumulative progress reported by source.
// Data blocks met between progress packets are accumulated and returned by GetResult.
func NewProgressResult(source packet.Source, opts ...Option) query.ProgressResult {
	return internalQuery.NewProgressResult(source, opts...)
}

// NewIterResult makes a cursor which yields one chunk per packet of source.
// Packets without a block yield an empty chunk unless WithSkipEmptyChunks is set.
func NewIterResult(source packet.Source, opts ...Option) query.IterResult {
	return internalQuery.NewIterResult(source, opts...)
}
