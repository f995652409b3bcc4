package kv

import (
	"fmt"
	"strconv"
	"time"
)

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	Uint64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	Uint64Type:   "uint64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() string {
	if ft < 0 || ft >= endType {
		return fieldTypeNames[InvalidType]
	}

	return fieldTypeNames[ft]
}

// KeyValue is a typed key-value pair used as a structured log field.
// Only one of the value holders is meaningful, depending on ftype.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

func (f KeyValue) Uint64Value() uint64 {
	f.checkType(Uint64Type)

	return uint64(f.vint)
}

func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	f.checkType(StringsType)
	if f.vany == nil {
		return nil
	}

	return f.vany.([]string)
}

func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(error)
}

func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case Uint64Type:
		return f.Uint64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case AnyType, StringerType:
		return f.vany
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(fmt.Stringer)
}

// String returns the value formatted for a text log line
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case Uint64Type:
		return strconv.FormatUint(uint64(f.vint), 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case StringerType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.Stringer().String()
	case AnyType:
		if f.vany == nil {
			return "<nil>"
		}

		return fmt.Sprintf("%v", f.vany)
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

func Int(k string, v int) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{ftype: Int64Type, key: k, vint: v}
}

func Uint64(k string, v uint64) KeyValue {
	return KeyValue{ftype: Uint64Type, key: k, vint: int64(v)}
}

func String(k, v string) KeyValue {
	return KeyValue{ftype: StringType, key: k, vstr: v}
}

func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{ftype: BoolType, key: key, vint: vint}
}

func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{ftype: DurationType, key: key, vint: value.Nanoseconds()}
}

func Strings(key string, value []string) KeyValue {
	return KeyValue{ftype: StringsType, key: key, vany: value}
}

func NamedError(key string, value error) KeyValue {
	if value == nil {
		return KeyValue{ftype: ErrorType, key: key}
	}

	return KeyValue{ftype: ErrorType, key: key, vany: value}
}

func Error(value error) KeyValue {
	return NamedError("error", value)
}

func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: key, vany: value}
}

// Any picks the most specific field type for value
func Any(key string, value interface{}) KeyValue {
	switch v := value.(type) {
	case int:
		return Int(key, v)
	case int64:
		return Int64(key, v)
	case uint64:
		return Uint64(key, v)
	case string:
		return String(key, v)
	case bool:
		return Bool(key, v)
	case time.Duration:
		return Duration(key, v)
	case []string:
		return Strings(key, v)
	case error:
		return NamedError(key, v)
	case fmt.Stringer:
		return Stringer(key, v)
	default:
		return KeyValue{ftype: AnyType, key: key, vany: value}
	}
}
