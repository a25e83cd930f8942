package log

import (
	"github.com/jonboulle/clockwork"
)

type minLevelOption Level

func (lvl minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(lvl)
}

func WithMinLevel(lvl Level) minLevelOption {
	return minLevelOption(lvl)
}

type clockOption struct {
	clock clockwork.Clock
}

func (opt clockOption) applySimpleOption(l *defaultLogger) {
	l.clock = opt.clock
}

// WithClock replaces the wall clock used for log timestamps, usually with a
// fake clock in tests.
func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}
