package log

import (
	"context"
)

type (
	ctxLevelKey struct{}
	ctxNamesKey struct{}
)

func WithLevel(ctx context.Context, lvl Level) context.Context {
	return context.WithValue(ctx, ctxLevelKey{}, lvl)
}

// LevelFromContext returns TRACE if no level was attached
func LevelFromContext(ctx context.Context) Level {
	v, _ := ctx.Value(ctxLevelKey{}).(Level)

	return v
}

// WithNames appends names to the logger namespace carried by ctx
func WithNames(ctx context.Context, names ...string) context.Context {
	// full slice expression forces append to allocate, so parent contexts never share the tail
	oldNames := NamesFromContext(ctx)

	return context.WithValue(ctx, ctxNamesKey{}, append(oldNames[:len(oldNames):len(oldNames)], names...))
}

func NamesFromContext(ctx context.Context) []string {
	v, _ := ctx.Value(ctxNamesKey{}).([]string)
	if v == nil {
		return []string{}
	}

	return v[:len(v):len(v)]
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	return WithLevel(WithNames(ctx, names...), lvl)
}
