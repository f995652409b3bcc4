package format

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/query"
)

var _ Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(data query.Data, w io.Writer) error {
	var records [][]string
	if names := header(data); len(names) > 0 {
		records = append(records, names)
	}
	for _, row := range data.Rows() {
		record := make([]string, 0, len(row))
		for _, v := range row {
			record = append(record, fmt.Sprint(v))
		}
		records = append(records, record)
	}

	if err := csv.NewWriter(w).WriteAll(records); err != nil {
		return xerrors.WithStackTrace(fmt.Errorf("csv write: %w", err))
	}

	return nil
}
