package log

import "context"

type (
	ctxLevelKey struct{}
	ctxNamesKey struct{}
)

func WithLevel(ctx context.Context, lvl Level) context.Context {
	return context.WithValue(ctx, ctxLevelKey{}, lvl)
}

func LevelFromContext(ctx context.Context) Level {
	if lvl, has := ctx.Value(ctxLevelKey{}).(Level); has {
		return lvl
	}

	return TRACE
}

func WithNames(ctx context.Context, names ...string) context.Context {
	// trim capacity to force allocation on append in next calls
	parent := NamesFromContext(ctx)
	merged := append(parent[:len(parent):len(parent)], names...)

	return context.WithValue(ctx, ctxNamesKey{}, merged)
}

func NamesFromContext(ctx context.Context) []string {
	if names, has := ctx.Value(ctxNamesKey{}).([]string); has {
		return names
	}

	return nil
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	return WithLevel(WithNames(ctx, names...), lvl)
}
