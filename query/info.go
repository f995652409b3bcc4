package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/stats"
)

// Info is the query metadata record kept apart from row data.
// Its setters are driven by the caller, not by result strategies.
type Info struct {
	QueryID     string
	ProfileInfo *stats.ProfileInfo
	// Progress is nil until the first progress update, merged afterwards
	Progress *stats.Progress
	Elapsed  time.Duration
}

// NewQueryID generates a random query identifier
func NewQueryID() string {
	return uuid.NewString()
}

// NewInfo makes a record for queryID, generating one if it is empty
func NewInfo(queryID string) *Info {
	if queryID == "" {
		queryID = NewQueryID()
	}

	return &Info{
		QueryID: queryID,
	}
}

func (i *Info) StoreProfile(info stats.ProfileInfo) {
	i.ProfileInfo = &info
}

func (i *Info) StoreElapsed(elapsed time.Duration) {
	i.Elapsed = elapsed
}

func (i *Info) StoreProgress(delta stats.Progress) {
	if i.Progress == nil {
		i.Progress = &stats.Progress{}
	}
	i.Progress.Increment(delta)
}

// Observe stores the metadata payload of p. Block packets are ignored.
func (i *Info) Observe(p packet.Packet) {
	switch p.Kind() {
	case packet.KindProgress:
		progress, _ := p.Progress()
		i.StoreProgress(progress)
	case packet.KindProfileInfo:
		info, _ := p.ProfileInfo()
		i.StoreProfile(info)
	case packet.KindElapsed:
		elapsed, _ := p.Elapsed()
		i.StoreElapsed(elapsed)
	case packet.KindBlock, packet.KindUnknown:
	}
}

// Measure starts a stopwatch on clock. The returned func stores the time passed since then as elapsed.
func (i *Info) Measure(clock clockwork.Clock) (stop func()) {
	start := clock.Now()

	return func() {
		i.StoreElapsed(clock.Since(start))
	}
}
