// Package block describes decoded columnar data blocks as consumed by result strategies.
package block

type (
	// Column is a (name, type) pair describing one column of a result
	Column struct {
		Name string
		Type string
	}

	// Block is an already decoded unit of tabular data with a fixed column shape.
	// A block with zero rows is a header block and carries only column metadata.
	// Implementations must be immutable once produced.
	Block interface {
		RowCount() int
		ColumnsWithTypes() []Column
		// Rows returns the row-major view of the block.
		Rows() [][]any
		// Columns returns the column-major view; len(Columns()) == len(ColumnsWithTypes()).
		Columns() [][]any
	}
)

var _ Block = (*block)(nil)

// block keeps the data row-major and builds the column-major view on demand
type block struct {
	columns []Column
	rows    [][]any
}

// New makes an in-memory block from row-major values.
// Every row must have exactly len(columns) values.
func New(columns []Column, rows [][]any) *block {
	return &block{
		columns: columns,
		rows:    rows,
	}
}

// Header makes a header block without rows
func Header(columns ...Column) *block {
	return New(columns, nil)
}

// FromColumns makes an in-memory block from column-major values.
// All columns must have the same length.
func FromColumns(columns []Column, values [][]any) *block {
	var rowCount int
	if len(values) > 0 {
		rowCount = len(values[0])
	}
	rows := make([][]any, rowCount)
	for i := range rows {
		row := make([]any, len(values))
		for j := range values {
			row[j] = values[j][i]
		}
		rows[i] = row
	}

	return New(columns, rows)
}

func (b *block) RowCount() int {
	return len(b.rows)
}

func (b *block) ColumnsWithTypes() []Column {
	return b.columns
}

func (b *block) Rows() [][]any {
	return b.rows
}

func (b *block) Columns() [][]any {
	columns := make([][]any, len(b.columns))
	for i := range columns {
		column := make([]any, len(b.rows))
		for j, row := range b.rows {
			column[j] = row[i]
		}
		columns[i] = column
	}

	return columns
}
