package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailsString(t *testing.T) {
	for _, test := range []struct {
		details Details
		exp     string
	}{
		{
			details: ResultLifeCycleEvents,
			exp:     "clickhouse.result",
		},
		{
			details: ResultPacketEvents | ResultChunkEvents,
			exp:     "clickhouse.result.chunk|clickhouse.result.packet",
		},
		{
			details: ResultEvents,
			exp:     "clickhouse.result|clickhouse.result.chunk|clickhouse.result.packet|clickhouse.result.progress",
		},
		{
			details: 0,
			exp:     "",
		},
	} {
		t.Run(test.exp, func(t *testing.T) {
			require.Equal(t, test.exp, test.details.String())
		})
	}
}

func TestMatchDetails(t *testing.T) {
	for _, test := range []struct {
		pattern string
		opts    []matchDetailsOption
		exp     Details
	}{
		{
			pattern: `^clickhouse\.result$`,
			exp:     ResultLifeCycleEvents,
		},
		{
			pattern: `^clickhouse\.result\.(packet|chunk)$`,
			exp:     ResultPacketEvents | ResultChunkEvents,
		},
		{
			pattern: `^clickhouse\.result.*$`,
			exp:     ResultEvents,
		},
		{
			pattern: `^nothing$`,
			exp:     DetailsAll,
		},
		{
			pattern: `^nothing$`,
			opts:    []matchDetailsOption{WithDefaultDetails(ResultPacketEvents)},
			exp:     ResultPacketEvents,
		},
		{
			pattern: `(`,
			opts:    []matchDetailsOption{WithDefaultDetails(ResultChunkEvents)},
			exp:     ResultChunkEvents,
		},
	} {
		t.Run(test.pattern, func(t *testing.T) {
			require.Equal(t, test.exp, MatchDetails(test.pattern, test.opts...))
		})
	}
}
