package query

import (
	"context"
	"errors"
	"io"

	"github.com/nitoqq/clickhouse-driver/internal/query/config"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/trace"
)

var errClosedResult = errors.New("result closed")

// stream is the pulling side shared by all result strategies.
// The first failure is kept and returned from every later pull.
type stream struct {
	source packet.Source
	stage  query.Stage

	queryID string
	trace   *trace.Result

	exhausted bool
	closed    bool
	err       error
}

func newStream(source packet.Source, stage query.Stage, cfg *config.Config) stream {
	return stream{
		source:  source,
		stage:   stage,
		queryID: cfg.QueryID(),
		trace:   cfg.Trace(),
	}
}

func (s *stream) next(ctx context.Context) (_ packet.Packet, finalErr error) {
	if s.err != nil {
		return packet.Packet{}, s.err
	}
	if s.exhausted {
		return packet.Packet{}, io.EOF
	}
	if s.closed {
		return packet.Packet{}, xerrors.WithStackTrace(errClosedResult)
	}

	var kind packet.Kind
	onDone := trace.ResultOnNextPacket(s.trace, &ctx, s.queryID)
	defer func() {
		onDone(kind, finalErr)
	}()

	select {
	case <-ctx.Done():
		s.err = xerrors.WithStackTrace(ctx.Err())

		return packet.Packet{}, s.err
	default:
		p, err := s.source.Next(ctx)
		if err != nil {
			return packet.Packet{}, s.fail(err)
		}
		kind = p.Kind()
		if kind == packet.KindBlock && p.Block() == nil {
			s.err = xerrors.WithStackTrace(&query.StageError{
				Stage: s.stage,
				Kind:  packet.KindBlock,
				Err:   query.ErrNilBlock,
			})

			return packet.Packet{}, s.err
		}

		return p, nil
	}
}

// fail records err as the sticky error. io.EOF only marks the source as exhausted.
func (s *stream) fail(err error) error {
	switch {
	case xerrors.Is(err, io.EOF):
		s.exhausted = true

		return io.EOF
	case xerrors.Is(err, context.Canceled, context.DeadlineExceeded):
		s.err = xerrors.WithStackTrace(err, xerrors.WithSkipDepth(1))
	default:
		var stageErr *query.StageError
		if xerrors.As(err, &stageErr) {
			s.err = err
		} else {
			s.err = xerrors.WithStackTrace(&query.StageError{
				Stage: s.stage,
				Kind:  packet.KindUnknown,
				Err:   err,
			}, xerrors.WithSkipDepth(1))
		}
	}

	return s.err
}

func (s *stream) Err() error {
	return s.err
}

func (s *stream) Close(ctx context.Context) (finalErr error) {
	if s.closed {
		return nil
	}
	onDone := trace.ResultOnClose(s.trace, &ctx, s.queryID)
	defer func() {
		onDone(finalErr)
	}()

	s.closed = true
	if closer, has := s.source.(packet.Closer); has {
		if err := closer.Close(ctx); err != nil {
			return xerrors.WithStackTrace(err)
		}
	}

	return nil
}
