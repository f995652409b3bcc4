package log

import (
	"context"
	"io"

	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/trace"
)

// Result makes trace.Result with logging events from details.
func Result(l Logger, d trace.Detailer, opts ...Option) *trace.Result {
	clock := newOptions(opts...).clock

	return &trace.Result{
		OnNew: func(info trace.ResultNewInfo) {
			if d.Details()&trace.ResultLifeCycleEvents == 0 {
				return
			}
			ctx := with(context.Background(), DEBUG, "clickhouse", "result", "new")
			l.Log(ctx, "created",
				queryIDField(info.QueryID),
				String("mode", info.Mode),
				Bool("with_column_types", info.WithColumnTypes),
				Bool("columnar", info.Columnar),
			)
		},
		OnNextPacket: func(info trace.ResultNextPacketStartInfo) func(trace.ResultNextPacketDoneInfo) {
			if d.Details()&trace.ResultPacketEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "clickhouse", "result", "packet")
			queryID := info.QueryID
			start := clock.Now()

			return func(info trace.ResultNextPacketDoneInfo) {
				switch {
				case info.Error == nil:
					l.Log(ctx, "received",
						queryIDField(queryID),
						Stringer("kind", info.Kind),
						latencyField(clock, start),
					)
				case xerrors.Is(info.Error, io.EOF):
					l.Log(ctx, "exhausted",
						queryIDField(queryID),
						latencyField(clock, start),
					)
				default:
					l.Log(WithLevel(ctx, ERROR), "failed",
						queryIDField(queryID),
						Error(info.Error),
						latencyField(clock, start),
					)
				}
			}
		},
		OnGetResult: func(info trace.ResultGetResultStartInfo) func(trace.ResultGetResultDoneInfo) {
			if d.Details()&trace.ResultLifeCycleEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "clickhouse", "result", "get")
			queryID := info.QueryID
			l.Log(ctx, "start", queryIDField(queryID))
			start := clock.Now()

			return func(info trace.ResultGetResultDoneInfo) {
				if info.Error == nil {
					l.Log(WithLevel(ctx, DEBUG), "done",
						queryIDField(queryID),
						Int("rows", info.Rows),
						latencyField(clock, start),
					)
				} else {
					l.Log(WithLevel(ctx, ERROR), "failed",
						queryIDField(queryID),
						Error(info.Error),
						latencyField(clock, start),
					)
				}
			}
		},
		OnProgress: func(info trace.ResultProgressInfo) {
			if d.Details()&trace.ResultProgressEvents == 0 {
				return
			}
			ctx := with(*info.Context, TRACE, "clickhouse", "result", "progress")
			l.Log(ctx, "progress",
				queryIDField(info.QueryID),
				Uint64("rows", info.Rows),
				Uint64("total_rows", info.TotalRows),
			)
		},
		OnNextChunk: func(info trace.ResultNextChunkStartInfo) func(trace.ResultNextChunkDoneInfo) {
			if d.Details()&trace.ResultChunkEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "clickhouse", "result", "chunk")
			queryID := info.QueryID
			start := clock.Now()

			return func(info trace.ResultNextChunkDoneInfo) {
				switch {
				case info.Error == nil:
					l.Log(ctx, "done",
						queryIDField(queryID),
						Int("rows", info.Rows),
						Bool("with_column_types", info.WithColumnTypes),
						latencyField(clock, start),
					)
				case xerrors.Is(info.Error, io.EOF):
					l.Log(WithLevel(ctx, DEBUG), "exhausted",
						queryIDField(queryID),
					)
				default:
					l.Log(WithLevel(ctx, ERROR), "failed",
						queryIDField(queryID),
						Error(info.Error),
						latencyField(clock, start),
					)
				}
			}
		},
		OnClose: func(info trace.ResultCloseStartInfo) func(trace.ResultCloseDoneInfo) {
			if d.Details()&trace.ResultLifeCycleEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "clickhouse", "result", "close")
			queryID := info.QueryID

			return func(info trace.ResultCloseDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "closed", queryIDField(queryID))
				} else {
					l.Log(WithLevel(ctx, WARN), "close failed",
						queryIDField(queryID),
						Error(info.Error),
					)
				}
			}
		},
	}
}
