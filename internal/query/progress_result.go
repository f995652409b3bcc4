package query

import (
	"context"
	"io"

	"github.com/nitoqq/clickhouse-driver/internal/query/config"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/internal/xiter"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/stats"
	"github.com/nitoqq/clickhouse-driver/trace"
)

var _ query.ProgressResult = (*progressResult)(nil)

type progressState int

const (
	progressStateInitial = progressState(iota)
	progressStateRunning
	progressStateExhausted
)

type progressResult struct {
	stream

	acc      *accumulator
	progress stats.Progress
	state    progressState
}

// NewProgressResult makes a cursor over cumulative progress of source
func NewProgressResult(source packet.Source, opts ...config.Option) *progressResult {
	cfg := config.New(opts...)
	trace.ResultOnNew(cfg.Trace(), cfg.QueryID(), "progress", cfg.WithColumnTypes(), cfg.Columnar())

	return &progressResult{
		stream: newStream(source, query.StageProgressWait, cfg),
		acc:    newAccumulator(cfg.WithColumnTypes(), cfg.Columnar()),
	}
}

func (r *progressResult) Next(ctx context.Context) (query.Tick, error) {
	if r.state == progressStateExhausted {
		return query.Tick{}, io.EOF
	}
	r.state = progressStateRunning
	for {
		p, err := r.next(ctx)
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				r.state = progressStateExhausted
			}

			return query.Tick{}, err
		}
		switch p.Kind() {
		case packet.KindProgress:
			delta, _ := p.Progress()
			r.progress.Increment(delta)
			trace.ResultOnProgress(r.trace, &ctx, r.queryID, r.progress.Rows, r.progress.TotalRows)

			return query.Tick{
				Rows:      r.progress.Rows,
				TotalRows: r.progress.TotalRows,
			}, nil
		case packet.KindBlock:
			if err = r.acc.store(p); err != nil {
				return query.Tick{}, r.fail(err)
			}
		case packet.KindProfileInfo, packet.KindElapsed, packet.KindUnknown:
		}
	}
}

func (r *progressResult) Ticks(ctx context.Context) xiter.Seq2[query.Tick, error] {
	return func(yield func(query.Tick, error) bool) {
		for {
			tick, err := r.Next(ctx)
			if err != nil && xerrors.Is(err, io.EOF) {
				return
			}
			if !yield(tick, err) || err != nil {
				return
			}
		}
	}
}

// Progress returns a copy of the cumulative progress
func (r *progressResult) Progress() stats.Progress {
	return r.progress
}

// GetResult drains the remaining ticks and returns the accumulated data
func (r *progressResult) GetResult(ctx context.Context) (_ query.Data, finalErr error) {
	var rows int
	onDone := trace.ResultOnGetResult(r.trace, &ctx, r.queryID)
	defer func() {
		onDone(rows, finalErr)
	}()

	for {
		if _, err := r.Next(ctx); err != nil {
			if xerrors.Is(err, io.EOF) {
				break
			}

			return query.Data{}, err
		}
	}
	data := r.acc.data()
	rows = data.RowCount()

	return data, nil
}
