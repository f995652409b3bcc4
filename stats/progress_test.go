package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProgressIncrement(t *testing.T) {
	t.Run("ZeroValue", func(t *testing.T) {
		var p Progress
		require.Equal(t, Progress{}, p)
	})
	t.Run("FieldWise", func(t *testing.T) {
		p := Progress{Rows: 1, Bytes: 10, TotalRows: 100}
		p.Increment(Progress{
			Rows:         2,
			Bytes:        20,
			TotalRows:    200,
			WrittenRows:  3,
			WrittenBytes: 30,
			Elapsed:      time.Second,
		})
		require.Equal(t, Progress{
			Rows:         3,
			Bytes:        30,
			TotalRows:    300,
			WrittenRows:  3,
			WrittenBytes: 30,
			Elapsed:      time.Second,
		}, p)
	})
	t.Run("OrderIndependent", func(t *testing.T) {
		deltas := []Progress{{Rows: 3}, {Rows: 5}, {Rows: 2}}
		for _, order := range [][]int{
			{0, 1, 2},
			{0, 2, 1},
			{1, 0, 2},
			{1, 2, 0},
			{2, 0, 1},
			{2, 1, 0},
		} {
			var p Progress
			for _, i := range order {
				p.Increment(deltas[i])
			}
			require.Equal(t, uint64(10), p.Rows, order)
		}
	})
	t.Run("Grouping", func(t *testing.T) {
		a, b, c := Progress{Rows: 3, Bytes: 1}, Progress{Rows: 5, Bytes: 2}, Progress{Rows: 2, Bytes: 3}

		left := a
		left.Increment(b)
		left.Increment(c)

		bc := b
		bc.Increment(c)
		right := a
		right.Increment(bc)

		require.Equal(t, left, right)
	})
}
