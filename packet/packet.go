// Package packet defines the typed packets consumed by result strategies
// and the pull-based contract of their producer.
package packet

import (
	"time"

	"github.com/nitoqq/clickhouse-driver/block"
	"github.com/nitoqq/clickhouse-driver/stats"
)

type Kind int

const (
	KindUnknown = Kind(iota)
	KindBlock
	KindProgress
	KindProfileInfo
	KindElapsed
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindProgress:
		return "progress"
	case KindProfileInfo:
		return "profile_info"
	case KindElapsed:
		return "elapsed"
	default:
		return "unknown"
	}
}

// Packet carries exactly one payload, identified by Kind.
// Accessors of the payloads other than Kind() return zero values.
type Packet struct {
	kind        Kind
	block       block.Block
	progress    stats.Progress
	profileInfo stats.ProfileInfo
	elapsed     time.Duration
}

func WithBlock(b block.Block) Packet {
	return Packet{kind: KindBlock, block: b}
}

func WithProgress(p stats.Progress) Packet {
	return Packet{kind: KindProgress, progress: p}
}

func WithProfileInfo(info stats.ProfileInfo) Packet {
	return Packet{kind: KindProfileInfo, profileInfo: info}
}

func WithElapsed(d time.Duration) Packet {
	return Packet{kind: KindElapsed, elapsed: d}
}

func (p Packet) Kind() Kind {
	return p.kind
}

// Block returns nil unless p is a block packet
func (p Packet) Block() block.Block {
	return p.block
}

func (p Packet) Progress() (stats.Progress, bool) {
	return p.progress, p.kind == KindProgress
}

func (p Packet) ProfileInfo() (stats.ProfileInfo, bool) {
	return p.profileInfo, p.kind == KindProfileInfo
}

func (p Packet) Elapsed() (time.Duration, bool) {
	return p.elapsed, p.kind == KindElapsed
}
