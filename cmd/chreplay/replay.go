package main

import (
	"context"
	"fmt"
	"io"

	"github.com/nitoqq/clickhouse-driver/format"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
)

// observingSource records metadata packets into info on the way to the result
type observingSource struct {
	packet.Source

	info *query.Info
}

func (s *observingSource) Next(ctx context.Context) (packet.Packet, error) {
	p, err := s.Source.Next(ctx)
	if err != nil {
		return p, err
	}
	s.info.Observe(p)

	return p, nil
}

func replayResult(ctx context.Context, r query.Result, f format.Formatter, w io.Writer) (finalErr error) {
	defer func() {
		finalErr = xerrors.Join(finalErr, r.Close(ctx))
	}()

	data, err := r.GetResult(ctx)
	if err != nil {
		return err
	}

	return f.Format(data, w)
}

func replayProgress(ctx context.Context, r query.ProgressResult, f format.Formatter, w io.Writer) (finalErr error) {
	defer func() {
		finalErr = xerrors.Join(finalErr, r.Close(ctx))
	}()

	for {
		tick, err := r.Next(ctx)
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				break
			}

			return err
		}
		fmt.Fprintf(w, "progress: %d/%d rows\n", tick.Rows, tick.TotalRows)
	}
	data, err := r.GetResult(ctx)
	if err != nil {
		return err
	}

	return f.Format(data, w)
}

func replayIter(ctx context.Context, r query.IterResult, f format.Formatter, w io.Writer) (finalErr error) {
	defer func() {
		finalErr = xerrors.Join(finalErr, r.Close(ctx))
	}()

	for i := 0; ; i++ {
		chunk, err := r.NextChunk(ctx)
		if err != nil {
			if xerrors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
		fmt.Fprintf(w, "chunk #%d:\n", i)
		if chunk.Empty() {
			fmt.Fprintln(w, "(empty)")

			continue
		}
		if err = f.Format(query.Data{
			Values:           chunk.Rows,
			ColumnsWithTypes: chunk.ColumnsWithTypes,
		}, w); err != nil {
			return err
		}
	}
}
