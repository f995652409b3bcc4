package query

import (
	"context"
	"io"

	"github.com/nitoqq/clickhouse-driver/internal/query/config"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/trace"
)

var _ query.Result = (*result)(nil)

type result struct {
	stream

	acc *accumulator
}

// NewResult makes a result which drains source on the first GetResult call
func NewResult(source packet.Source, opts ...config.Option) *result {
	cfg := config.New(opts...)
	trace.ResultOnNew(cfg.Trace(), cfg.QueryID(), "materialized", cfg.WithColumnTypes(), cfg.Columnar())

	return &result{
		stream: newStream(source, query.StageStore, cfg),
		acc:    newAccumulator(cfg.WithColumnTypes(), cfg.Columnar()),
	}
}

func (r *result) GetResult(ctx context.Context) (_ query.Data, finalErr error) {
	var rows int
	onDone := trace.ResultOnGetResult(r.trace, &ctx, r.queryID)
	defer func() {
		onDone(rows, finalErr)
	}()

	if err := drain(ctx, &r.stream, r.acc); err != nil {
		return query.Data{}, err
	}
	data := r.acc.data()
	rows = data.RowCount()

	return data, nil
}

// drain pulls s until io.EOF storing every packet into acc
func drain(ctx context.Context, s *stream, acc *accumulator) error {
	for {
		p, err := s.next(ctx)
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
		if err = acc.store(p); err != nil {
			return s.fail(err)
		}
	}
}
