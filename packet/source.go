package packet

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
)

//go:generate mockgen -source source.go -destination ../internal/query/source_mock_test.go -package query

var ErrSourceClosed = errors.New("packet source closed")

type (
	// Source is a single-use, ordered, pull-based sequence of packets with a single consumer.
	// Next blocks until a packet is available. It returns io.EOF once the sequence is
	// exhausted and keeps returning io.EOF afterwards. Any other error is a source failure.
	Source interface {
		Next(ctx context.Context) (Packet, error)
	}

	// Closer is implemented by sources which hold resources until drained
	Closer interface {
		Close(ctx context.Context) error
	}
)

var (
	_ Source = (*sliceSource)(nil)
	_ Source = (*funcSource)(nil)
	_ Closer = (*funcSource)(nil)
)

type sliceSource struct {
	packets []Packet
}

// FromSlice makes a source which yields packets in order
func FromSlice(packets ...Packet) *sliceSource {
	return &sliceSource{
		packets: packets,
	}
}

func (s *sliceSource) Next(ctx context.Context) (Packet, error) {
	select {
	case <-ctx.Done():
		return Packet{}, xerrors.WithStackTrace(ctx.Err())
	default:
		if len(s.packets) == 0 {
			return Packet{}, io.EOF
		}
		p := s.packets[0]
		s.packets = s.packets[1:]

		return p, nil
	}
}

// ProduceFunc pushes packets with yield until the sequence is over.
// yield fails when the source was closed or the producer context is done.
type ProduceFunc func(ctx context.Context, yield func(Packet) error) error

type funcSource struct {
	packets chan Packet
	cancel  context.CancelFunc
	group   *errgroup.Group
	err     error
}

// FromFunc runs produce in a separate goroutine and hands its packets over one by one.
// An error returned by produce is reported by Next after all yielded packets were consumed.
// Close must be called if the source is abandoned before io.EOF.
func FromFunc(ctx context.Context, produce ProduceFunc) *funcSource {
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	packets := make(chan Packet)

	group.Go(func() error {
		defer close(packets)

		return produce(ctx, func(p Packet) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case packets <- p:
				return nil
			}
		})
	})

	return &funcSource{
		packets: packets,
		cancel:  cancel,
		group:   group,
	}
}

func (s *funcSource) Next(ctx context.Context) (Packet, error) {
	if s.err != nil {
		return Packet{}, s.err
	}
	select {
	case <-ctx.Done():
		return Packet{}, xerrors.WithStackTrace(ctx.Err())
	case p, ok := <-s.packets:
		if ok {
			return p, nil
		}
		s.err = io.EOF
		if err := s.group.Wait(); err != nil {
			s.err = xerrors.WithStackTrace(err)
		}
		s.cancel()

		return Packet{}, s.err
	}
}

func (s *funcSource) Close(context.Context) error {
	s.cancel()
	err := s.group.Wait()
	if s.err != nil {
		// drained already, the producer error (if any) was reported by Next
		return nil
	}
	s.err = xerrors.WithStackTrace(ErrSourceClosed)
	if err != nil && !xerrors.Is(err, context.Canceled) {
		return xerrors.WithStackTrace(err)
	}

	return nil
}
