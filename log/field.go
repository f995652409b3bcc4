package log

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/nitoqq/clickhouse-driver/internal/kv"
)

type (
	Field = kv.KeyValue
)

const (
	IntType      = kv.IntType
	Int64Type    = kv.Int64Type
	Uint64Type   = kv.Uint64Type
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	StringsType  = kv.StringsType
	ErrorType    = kv.ErrorType
	AnyType      = kv.AnyType
	StringerType = kv.StringerType
)

func String(k, v string) Field {
	return kv.String(k, v)
}

func Int(k string, v int) Field {
	return kv.Int(k, v)
}

func Uint64(k string, v uint64) Field {
	return kv.Uint64(k, v)
}

func Bool(k string, v bool) Field {
	return kv.Bool(k, v)
}

func Duration(k string, v time.Duration) Field {
	return kv.Duration(k, v)
}

func Stringer(k string, v fmt.Stringer) Field {
	return kv.Stringer(k, v)
}

func Error(err error) Field {
	return kv.Error(err)
}

func Any(k string, v interface{}) Field {
	return kv.Any(k, v)
}

func latencyField(clock clockwork.Clock, start time.Time) Field {
	return kv.Duration("latency", clock.Since(start))
}

func queryIDField(queryID string) Field {
	return kv.String("query_id", queryID)
}
