// Package format renders materialized results for people and scripts.
package format

import (
	"io"

	"github.com/nitoqq/clickhouse-driver/query"
)

// Formatter writes data to w in some textual representation
type Formatter interface {
	Name() string
	Format(data query.Data, w io.Writer) error
}

// ByName returns a known formatter by its name
func ByName(name string) (Formatter, bool) {
	for _, f := range []Formatter{NewTable(), NewCSV()} {
		if f.Name() == name {
			return f, true
		}
	}

	return nil, false
}

func header(data query.Data) []string {
	names := make([]string, 0, len(data.ColumnsWithTypes))
	for _, c := range data.ColumnsWithTypes {
		names = append(names, c.Name)
	}

	return names
}
