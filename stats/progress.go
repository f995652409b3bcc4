// Package stats holds query execution counters reported by the server.
package stats

import (
	"time"
)

// Progress is a set of cumulative counters describing query execution advancement.
// Updates from the server are deltas and must be merged with Increment.
type Progress struct {
	Rows         uint64
	Bytes        uint64
	TotalRows    uint64
	WrittenRows  uint64
	WrittenBytes uint64
	Elapsed      time.Duration
}

// Increment adds every counter of delta into p
func (p *Progress) Increment(delta Progress) {
	p.Rows += delta.Rows
	p.Bytes += delta.Bytes
	p.TotalRows += delta.TotalRows
	p.WrittenRows += delta.WrittenRows
	p.WrittenBytes += delta.WrittenBytes
	p.Elapsed += delta.Elapsed
}
