package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lachlan/crystal-db/internal/kv"
)

var _ Logger = (*zapLogger)(nil)

// Zap adapts a *zap.Logger to the Logger interface. The context scope names
// become the zap logger name, levels map one to one.
func Zap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

type zapLogger struct {
	l *zap.Logger
}

func (l *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	logger := l.l
	for _, name := range NamesFromContext(ctx) {
		logger = logger.Named(name)
	}

	logger.Log(zapLevel(LevelFromContext(ctx)), msg, zapFields(fields)...)
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InvalidLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	ff := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case kv.ErrorType:
			ff = append(ff, zap.NamedError(f.Key(), f.ErrorValue()))
		default:
			ff = append(ff, zap.String(f.Key(), f.String()))
		}
	}

	return ff
}
