package query

import (
	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/stats"
)

var (
	columnA = block.Column{Name: "a", Type: "Int32"}
	columnB = block.Column{Name: "b", Type: "String"}
	columnC = block.Column{Name: "c", Type: "Float64"}
)

func header(columns ...block.Column) packet.Packet {
	return packet.WithBlock(block.Header(columns...))
}

func rows(values ...[]any) packet.Packet {
	return packet.WithBlock(block.New([]block.Column{columnA, columnB}, values))
}

func progress(rows, totalRows uint64) packet.Packet {
	return packet.WithProgress(stats.Progress{Rows: rows, TotalRows: totalRows})
}
