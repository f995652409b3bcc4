package clickhouse

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/internal/xtest"
	"github.com/nitoqq/clickhouse-driver/log"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/stats"
	"github.com/nitoqq/clickhouse-driver/trace"
)

var testColumns = []block.Column{
	{Name: "a", Type: "Int32"},
	{Name: "b", Type: "String"},
}

func testBlock(rows ...[]any) packet.Packet {
	return packet.WithBlock(block.New(testColumns, rows))
}

func TestNewResultWithLogger(t *testing.T) {
	ctx := xtest.Context(t)
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewResult(packet.FromSlice(
		packet.WithBlock(block.Header(testColumns...)),
		testBlock([]any{int32(1), "x"}),
		packet.WithProgress(stats.Progress{Rows: 1}),
	),
		WithQueryID("q1"),
		WithColumnTypes(),
		WithClock(clockwork.NewFakeClock()),
		WithLogger(log.Zap(zap.New(core)), trace.ResultLifeCycleEvents),
	)
	data, err := r.GetResult(ctx)
	require.NoError(t, err)
	require.Equal(t, testColumns, data.ColumnsWithTypes)
	require.NoError(t, r.Close(ctx))

	var messages []string
	for _, entry := range logs.AllUntimed() {
		require.Equal(t, "q1", entry.ContextMap()["query_id"])
		messages = append(messages, entry.LoggerName+": "+entry.Message)
	}
	require.Equal(t, []string{
		"clickhouse.result.new: created",
		"clickhouse.result.get: start",
		"clickhouse.result.get: done",
		"clickhouse.result.close: closed",
	}, messages)
}

func TestNewResultFailure(t *testing.T) {
	ctx := xtest.Context(t)
	errProducer := errors.New("decode failed")
	source := packet.FromFunc(ctx, func(ctx context.Context, yield func(packet.Packet) error) error {
		if err := yield(testBlock([]any{int32(1), "x"})); err != nil {
			return err
		}

		return errProducer
	})
	core, logs := observer.New(zapcore.ErrorLevel)
	r := NewResult(source, WithLogger(log.Zap(zap.New(core)), trace.DetailsAll))
	_, err := r.GetResult(ctx)
	require.ErrorIs(t, err, errProducer)
	var stageErr *query.StageError
	require.ErrorAs(t, err, &stageErr)
	require.NoError(t, r.Close(ctx))
	require.Equal(t, 2, logs.FilterMessage("failed").Len())
}

func TestNewResultNilBlock(t *testing.T) {
	ctx := xtest.Context(t)
	r := NewResult(packet.FromSlice(packet.WithBlock(nil)))
	var err error
	require.NotPanics(t, func() {
		_, err = r.GetResult(ctx)
	})
	require.ErrorIs(t, err, query.ErrNilBlock)
}

func TestNewIterResultFromFunc(t *testing.T) {
	ctx := xtest.Context(t)
	source := packet.FromFunc(ctx, func(ctx context.Context, yield func(packet.Packet) error) error {
		for i := int32(0); i < 3; i++ {
			if err := yield(testBlock([]any{i, "x"})); err != nil {
				return err
			}
		}

		return nil
	})
	r := NewIterResult(source)
	chunk, err := r.NextChunk(ctx)
	require.NoError(t, err)
	require.Equal(t, [][]any{{int32(0), "x"}}, chunk.Rows)
	require.NoError(t, r.Close(ctx))
	_, err = r.NextChunk(ctx)
	require.Error(t, err)
	require.False(t, errors.Is(err, io.EOF))
}
