package log

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nitoqq/clickhouse-driver/internal/kv"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts l to Logger. Names from context become the zap logger name,
// TRACE records are written at debug level and FATAL records at error level.
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{
		l: l,
	}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	zapFields := make([]zap.Field, 0, len(fields))
	for i := range fields {
		zapFields = append(zapFields, zapField(fields[i]))
	}

	switch LevelFromContext(ctx) {
	case TRACE, DEBUG:
		l.Debug(msg, zapFields...)
	case INFO:
		l.Info(msg, zapFields...)
	case WARN:
		l.Warn(msg, zapFields...)
	case ERROR, FATAL:
		l.Error(msg, zapFields...)
	case QUIET:
	}
}

func zapField(f Field) zap.Field {
	switch f.Type() {
	case kv.IntType:
		return zap.Int(f.Key(), f.IntValue())
	case kv.Int64Type:
		return zap.Int64(f.Key(), f.Int64Value())
	case kv.Uint64Type:
		return zap.Uint64(f.Key(), f.Uint64Value())
	case kv.StringType:
		return zap.String(f.Key(), f.StringValue())
	case kv.BoolType:
		return zap.Bool(f.Key(), f.BoolValue())
	case kv.DurationType:
		return zap.Duration(f.Key(), f.DurationValue())
	case kv.StringsType:
		return zap.Strings(f.Key(), f.StringsValue())
	case kv.ErrorType:
		return zap.NamedError(f.Key(), f.ErrorValue())
	case kv.StringerType:
		return zap.Stringer(f.Key(), f.Stringer())
	default:
		return zap.Any(f.Key(), f.AnyValue())
	}
}
