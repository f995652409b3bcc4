package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/query"
)

var _ Formatter = (*Table)(nil)

type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

// Format renders data as a borderless table. Column names form the header
// when the data carries column metadata.
func (tf *Table) Format(data query.Data, w io.Writer) error {
	t := table.NewWriter()
	if names := header(data); len(names) > 0 {
		tableHeader := make(table.Row, 0, len(names))
		for _, name := range names {
			tableHeader = append(tableHeader, name)
		}
		t.AppendHeader(tableHeader)
	}
	for _, row := range data.Rows() {
		t.AppendRow(table.Row(row))
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false

	if _, err := io.WriteString(w, t.Render()+"\n"); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}
