package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/stats"
)

func TestFixturePackets(t *testing.T) {
	fx, err := readFixture(strings.NewReader(`
columns:
  - {name: a, type: Int32}
packets:
  - header: true
  - rows: [[1], [2]]
  - columns: [{name: b, type: String}]
    rows: [[x]]
  - progress: {rows: 2, total_rows: 5, elapsed: 1s}
  - profile_info: {rows: 2, blocks: 1, applied_limit: true}
  - elapsed: 1.5s
`))
	require.NoError(t, err)
	packets, err := fx.packets()
	require.NoError(t, err)
	require.Len(t, packets, 6)

	require.Equal(t, packet.KindBlock, packets[0].Kind())
	require.Zero(t, packets[0].Block().RowCount())
	require.Equal(t, []block.Column{{Name: "a", Type: "Int32"}}, packets[0].Block().ColumnsWithTypes())

	require.Equal(t, [][]any{{1}, {2}}, packets[1].Block().Rows())
	require.Equal(t, []block.Column{{Name: "b", Type: "String"}}, packets[2].Block().ColumnsWithTypes())
	require.Equal(t, [][]any{{"x"}}, packets[2].Block().Rows())

	progress, ok := packets[3].Progress()
	require.True(t, ok)
	require.Equal(t, stats.Progress{Rows: 2, TotalRows: 5, Elapsed: time.Second}, progress)

	info, ok := packets[4].ProfileInfo()
	require.True(t, ok)
	require.Equal(t, stats.ProfileInfo{Rows: 2, Blocks: 1, AppliedLimit: true}, info)

	elapsed, ok := packets[5].Elapsed()
	require.True(t, ok)
	require.Equal(t, 1500*time.Millisecond, elapsed)
}

func TestFixtureBadPackets(t *testing.T) {
	for _, tt := range []struct {
		name string
		yaml string
	}{
		{
			name: "Empty",
			yaml: "packets: [{}]",
		},
		{
			name: "Ambiguous",
			yaml: "packets: [{header: true, elapsed: 1s}]",
		},
		{
			name: "RowShape",
			yaml: "columns: [{name: a, type: Int32}]\npackets: [{rows: [[1, 2]]}]",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			fx, err := readFixture(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			_, err = fx.packets()
			require.Error(t, err)
		})
	}
	_, err := readFixture(strings.NewReader("packets: {"))
	require.Error(t, err)
}
