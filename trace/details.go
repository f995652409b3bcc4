package trace

import (
	"regexp"
	"sort"
	"strings"
)

type Detailer interface {
	Details() Details
}

var _ Detailer = Details(0)

type Details uint64

func (d Details) Details() Details {
	return d
}

func (d Details) String() string {
	ss := make([]string, 0)
	for bit, name := range detailsMap {
		if d&bit != 0 {
			ss = append(ss, name)
		}
	}
	sort.Strings(ss)

	return strings.Join(ss, "|")
}

const (
	ResultLifeCycleEvents Details = 1 << iota // for bitmask: 1, 2, 4, 8, 16, 32, ...
	ResultPacketEvents
	ResultProgressEvents
	ResultChunkEvents

	ResultEvents = ResultLifeCycleEvents |
		ResultPacketEvents |
		ResultProgressEvents |
		ResultChunkEvents

	DetailsAll = ^Details(0) // All bits enabled
)

var (
	detailsMap = map[Details]string{
		ResultLifeCycleEvents: "clickhouse.result",
		ResultPacketEvents:    "clickhouse.result.packet",
		ResultProgressEvents:  "clickhouse.result.progress",
		ResultChunkEvents:     "clickhouse.result.chunk",
	}
	defaultDetails = DetailsAll
)

type matchDetailsOptionsHolder struct {
	defaultDetails Details
}

type matchDetailsOption func(h *matchDetailsOptionsHolder)

func WithDefaultDetails(defaultDetails Details) matchDetailsOption {
	return func(h *matchDetailsOptionsHolder) {
		h.defaultDetails = defaultDetails
	}
}

// MatchDetails selects details whose names match the regexp pattern.
// Default details are returned for an invalid pattern or if nothing matched.
func MatchDetails(pattern string, opts ...matchDetailsOption) (d Details) {
	h := &matchDetailsOptionsHolder{
		defaultDetails: defaultDetails,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return h.defaultDetails
	}
	for k, v := range detailsMap {
		if re.MatchString(v) {
			d |= k
		}
	}
	if d == 0 {
		return h.defaultDetails
	}

	return d
}
