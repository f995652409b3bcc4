package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/stats"
)

var errBadPacket = errors.New("packet must set exactly one of header, rows, progress, profile_info, elapsed")

type (
	fixtureColumn struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}
	fixtureProgress struct {
		Rows         uint64        `yaml:"rows"`
		Bytes        uint64        `yaml:"bytes"`
		TotalRows    uint64        `yaml:"total_rows"`
		WrittenRows  uint64        `yaml:"written_rows"`
		WrittenBytes uint64        `yaml:"written_bytes"`
		Elapsed      time.Duration `yaml:"elapsed"`
	}
	fixtureProfileInfo struct {
		Rows                      uint64 `yaml:"rows"`
		Blocks                    uint64 `yaml:"blocks"`
		Bytes                     uint64 `yaml:"bytes"`
		AppliedLimit              bool   `yaml:"applied_limit"`
		RowsBeforeLimit           uint64 `yaml:"rows_before_limit"`
		CalculatedRowsBeforeLimit bool   `yaml:"calculated_rows_before_limit"`
	}
	fixturePacket struct {
		// Columns overrides fixture columns for this block
		Columns     []fixtureColumn     `yaml:"columns"`
		Header      bool                `yaml:"header"`
		Rows        [][]any             `yaml:"rows"`
		Progress    *fixtureProgress    `yaml:"progress"`
		ProfileInfo *fixtureProfileInfo `yaml:"profile_info"`
		Elapsed     *time.Duration      `yaml:"elapsed"`
	}
	// fixture is a recorded packet sequence of one query
	fixture struct {
		QueryID string          `yaml:"query_id"`
		Columns []fixtureColumn `yaml:"columns"`
		Packets []fixturePacket `yaml:"packets"`
	}
)

func readFixture(r io.Reader) (*fixture, error) {
	var f fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, xerrors.WithStackTrace(fmt.Errorf("decode fixture: %w", err))
	}

	return &f, nil
}

func (f *fixture) packets() ([]packet.Packet, error) {
	packets := make([]packet.Packet, 0, len(f.Packets))
	for i := range f.Packets {
		p, err := f.Packets[i].packet(f.Columns)
		if err != nil {
			return nil, xerrors.WithStackTrace(fmt.Errorf("packet #%d: %w", i, err))
		}
		packets = append(packets, p)
	}

	return packets, nil
}

func (p *fixturePacket) packet(defaultColumns []fixtureColumn) (packet.Packet, error) {
	var (
		set    int
		result packet.Packet
	)
	columns := p.Columns
	if len(columns) == 0 {
		columns = defaultColumns
	}
	if p.Header {
		set++
		result = packet.WithBlock(block.Header(blockColumns(columns)...))
	}
	if len(p.Rows) > 0 {
		set++
		for i, row := range p.Rows {
			if len(row) != len(columns) {
				return packet.Packet{}, fmt.Errorf("row #%d has %d values for %d columns", i, len(row), len(columns))
			}
		}
		result = packet.WithBlock(block.New(blockColumns(columns), p.Rows))
	}
	if p.Progress != nil {
		set++
		result = packet.WithProgress(stats.Progress(*p.Progress))
	}
	if p.ProfileInfo != nil {
		set++
		result = packet.WithProfileInfo(stats.ProfileInfo(*p.ProfileInfo))
	}
	if p.Elapsed != nil {
		set++
		result = packet.WithElapsed(*p.Elapsed)
	}
	if set != 1 {
		return packet.Packet{}, errBadPacket
	}

	return result, nil
}

func blockColumns(columns []fixtureColumn) []block.Column {
	out := make([]block.Column, 0, len(columns))
	for _, c := range columns {
		out = append(out, block.Column(c))
	}

	return out
}
