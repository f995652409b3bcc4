package query

import (
	"context"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/internal/xiter"
	"github.com/nitoqq/clickhouse-driver/stats"
)

type (
	closer interface {
		Close(ctx context.Context) error
	}

	// Result drains the whole packet source and returns the accumulated data.
	// Any error except io.EOF makes the result unusable: it is returned again on later calls.
	Result interface {
		closer

		GetResult(ctx context.Context) (Data, error)
		Err() error
	}

	// ProgressResult is a Result which is also a cursor over cumulative progress.
	// Data blocks met while waiting for progress are accumulated on the side.
	ProgressResult interface {
		Result

		// Next returns io.EOF when the source is exhausted
		Next(ctx context.Context) (Tick, error)
		Ticks(ctx context.Context) xiter.Seq2[Tick, error]
		Progress() stats.Progress
	}

	// IterResult streams one chunk per packet without buffering across blocks
	IterResult interface {
		closer

		// NextChunk returns io.EOF when the source is exhausted
		NextChunk(ctx context.Context) (Chunk, error)
		Chunks(ctx context.Context) xiter.Seq2[Chunk, error]
		Err() error
	}
)

type (
	// Data is an accumulated result
	Data struct {
		// Values holds rows in row mode and columns in columnar mode
		Values   [][]any
		Columnar bool
		// ColumnsWithTypes is filled only when column types were requested and
		// a header block was received
		ColumnsWithTypes []block.Column
	}

	// Chunk is a part of a streamed result
	Chunk struct {
		// ColumnsWithTypes prefixes the first data chunk when column types were requested
		ColumnsWithTypes []block.Column
		Rows             [][]any
	}

	// Tick is the cumulative progress reported after each progress packet
	Tick struct {
		Rows      uint64
		TotalRows uint64
	}
)

func (d Data) RowCount() int {
	if !d.Columnar {
		return len(d.Values)
	}
	if len(d.Values) == 0 {
		return 0
	}

	return len(d.Values[0])
}

// Rows returns the values row-major regardless of the accumulation mode
func (d Data) Rows() [][]any {
	if !d.Columnar {
		return d.Values
	}
	rows := make([][]any, d.RowCount())
	for i := range rows {
		row := make([]any, len(d.Values))
		for j := range d.Values {
			row[j] = d.Values[j][i]
		}
		rows[i] = row
	}

	return rows
}

func (c Chunk) Empty() bool {
	return len(c.ColumnsWithTypes) == 0 && len(c.Rows) == 0
}
