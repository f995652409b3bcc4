package query

import (
	"context"
	"io"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/internal/query/config"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/internal/xiter"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/trace"
)

var _ query.IterResult = (*iterResult)(nil)

type iterResult struct {
	stream

	withColumnTypes bool
	skipEmptyChunks bool

	firstBlock bool
	// pending holds header metadata waiting for the next data chunk when empty chunks are skipped
	pending []block.Column
}

// NewIterResult makes a cursor yielding one chunk per packet of source
func NewIterResult(source packet.Source, opts ...config.Option) *iterResult {
	cfg := config.New(opts...)
	trace.ResultOnNew(cfg.Trace(), cfg.QueryID(), "iter", cfg.WithColumnTypes(), false)

	return &iterResult{
		stream:          newStream(source, query.StageChunk, cfg),
		withColumnTypes: cfg.WithColumnTypes(),
		skipEmptyChunks: cfg.SkipEmptyChunks(),
		firstBlock:      true,
	}
}

func (r *iterResult) NextChunk(ctx context.Context) (chunk query.Chunk, finalErr error) {
	onDone := trace.ResultOnNextChunk(r.trace, &ctx, r.queryID)
	defer func() {
		onDone(len(chunk.Rows), len(chunk.ColumnsWithTypes) > 0, finalErr)
	}()

	if r.skipEmptyChunks {
		return r.nextNonEmpty(ctx)
	}

	p, err := r.next(ctx)
	if err != nil {
		return query.Chunk{}, err
	}

	return r.chunk(p), nil
}

func (r *iterResult) chunk(p packet.Packet) query.Chunk {
	switch p.Kind() {
	case packet.KindBlock:
		b := p.Block()
		var chunk query.Chunk
		if r.firstBlock && r.withColumnTypes {
			chunk.ColumnsWithTypes = b.ColumnsWithTypes()
		}
		r.firstBlock = false
		if b.RowCount() > 0 {
			chunk.Rows = b.Rows()
		}

		return chunk
	case packet.KindProgress, packet.KindProfileInfo, packet.KindElapsed, packet.KindUnknown:
	}

	return query.Chunk{}
}

func (r *iterResult) nextNonEmpty(ctx context.Context) (query.Chunk, error) {
	for {
		p, err := r.next(ctx)
		if err != nil {
			if xerrors.Is(err, io.EOF) && len(r.pending) > 0 {
				chunk := query.Chunk{ColumnsWithTypes: r.pending}
				r.pending = nil

				return chunk, nil
			}

			return query.Chunk{}, err
		}
		chunk := r.chunk(p)
		if len(chunk.Rows) == 0 {
			if len(chunk.ColumnsWithTypes) > 0 {
				r.pending = chunk.ColumnsWithTypes
			}

			continue
		}
		if len(r.pending) > 0 {
			chunk.ColumnsWithTypes = r.pending
			r.pending = nil
		}

		return chunk, nil
	}
}

func (r *iterResult) Chunks(ctx context.Context) xiter.Seq2[query.Chunk, error] {
	return func(yield func(query.Chunk, error) bool) {
		for {
			chunk, err := r.NextChunk(ctx)
			if err != nil && xerrors.Is(err, io.EOF) {
				return
			}
			if !yield(chunk, err) || err != nil {
				return
			}
		}
	}
}
