package query

import (
	"fmt"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
)

// accumulator collects data blocks into rows or columns
type accumulator struct {
	withColumnTypes bool
	columnar        bool

	values [][]any

	// columnsWithTypes is taken from the first header block only
	columnsWithTypes []block.Column
	captured         bool
}

func newAccumulator(withColumnTypes, columnar bool) *accumulator {
	return &accumulator{
		withColumnTypes: withColumnTypes,
		columnar:        columnar,
	}
}

func (a *accumulator) store(p packet.Packet) error {
	switch p.Kind() {
	case packet.KindBlock:
		return a.storeBlock(p.Block())
	case packet.KindProgress, packet.KindProfileInfo, packet.KindElapsed, packet.KindUnknown:
	}

	return nil
}

func (a *accumulator) storeBlock(b block.Block) error {
	if b.RowCount() == 0 {
		if !a.captured {
			a.columnsWithTypes = b.ColumnsWithTypes()
			a.captured = true
		}

		return nil
	}

	if !a.columnar {
		a.values = append(a.values, b.Rows()...)

		return nil
	}

	columns := b.Columns()
	if len(a.values) == 0 {
		a.values = make([][]any, len(columns))
		for i := range columns {
			a.values[i] = append([]any(nil), columns[i]...)
		}

		return nil
	}
	if len(columns) != len(a.values) {
		return xerrors.WithStackTrace(&query.StageError{
			Stage: query.StageStore,
			Kind:  packet.KindBlock,
			Err: fmt.Errorf("%w: accumulated %d columns, block has %d",
				query.ErrShapeMismatch, len(a.values), len(columns),
			),
		})
	}
	for i := range columns {
		a.values[i] = append(a.values[i], columns[i]...)
	}

	return nil
}

func (a *accumulator) data() query.Data {
	d := query.Data{
		Values:   a.values,
		Columnar: a.columnar,
	}
	if d.Values == nil {
		d.Values = [][]any{}
	}
	if a.withColumnTypes {
		d.ColumnsWithTypes = a.columnsWithTypes
	}

	return d
}
