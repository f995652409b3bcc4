package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/query"
)

var testData = query.Data{
	Values: [][]any{
		{int32(1), int32(2)},
		{"x", "y, z"},
	},
	Columnar: true,
	ColumnsWithTypes: []block.Column{
		{Name: "a", Type: "Int32"},
		{Name: "b", Type: "String"},
	},
}

func TestCSV(t *testing.T) {
	t.Run("WithHeader", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCSV().Format(testData, &buf))
		require.Equal(t, "a,b\n1,x\n2,\"y, z\"\n", buf.String())
	})
	t.Run("WithoutHeader", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewCSV().Format(query.Data{Values: [][]any{{1, "x"}}}, &buf))
		require.Equal(t, "1,x\n", buf.String())
	})
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTable().Format(testData, &buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "a")
	require.Contains(t, lines[0], "b")
	require.Contains(t, lines[2], "x")
	require.Contains(t, lines[3], "y, z")
}

func TestByName(t *testing.T) {
	for _, name := range []string{"table", "csv"} {
		t.Run(name, func(t *testing.T) {
			f, ok := ByName(name)
			require.True(t, ok)
			require.Equal(t, name, f.Name())
		})
	}
	_, ok := ByName("xml")
	require.False(t, ok)
}
