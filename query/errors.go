package query

import (
	"errors"
	"fmt"

	"github.com/nitoqq/clickhouse-driver/packet"
)

// ErrShapeMismatch is reported when a data block's column count differs from
// the column count of the columns accumulated so far
var ErrShapeMismatch = errors.New("column count mismatch")

// ErrNilBlock is reported when a source yields a block packet without a block
var ErrNilBlock = errors.New("block packet carries no block")

// Stage names the place where a result failed
type Stage int

const (
	StageStore = Stage(iota)
	StageProgressWait
	StageChunk
)

func (s Stage) String() string {
	switch s {
	case StageStore:
		return "store"
	case StageProgressWait:
		return "progress wait"
	case StageChunk:
		return "chunk decode"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// StageError wraps a failure with the stage and the packet kind being processed.
// Kind is packet.KindUnknown when pulling from the source failed.
type StageError struct {
	Stage Stage
	Kind  packet.Kind
	Err   error
}

func (e *StageError) Error() string {
	if e.Kind == packet.KindUnknown {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}

	return fmt.Sprintf("%s (%s packet): %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
