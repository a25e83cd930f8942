package log

import (
	"context"

	"github.com/lachlan/crystal-db/internal/kv"
	"github.com/lachlan/crystal-db/trace"
)

// Driver makes trace.Driver with logging events
func Driver(l Logger) trace.Driver {
	return trace.Driver{
		OnRegister: func(info trace.DriverRegisterInfo) {
			ctx := with(context.Background(), INFO, "db", "driver", "register")
			l.Log(ctx, "driver registered",
				kv.String("name", info.Name),
				kv.Bool("overwrite", info.Overwrite),
			)
		},
		OnResolve: func(info trace.DriverResolveStartInfo) func(trace.DriverResolveDoneInfo) {
			ctx := with(context.Background(), TRACE, "db", "driver", "resolve")
			name := info.Name
			l.Log(ctx, "driver resolve starting...",
				kv.String("name", name),
			)

			return func(info trace.DriverResolveDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "driver resolve done",
						kv.String("name", name),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "driver resolve failed",
						kv.Error(info.Error),
						kv.String("name", name),
					)
				}
			}
		},
		OnBuildDriver: func(info trace.DriverBuildStartInfo) func(trace.DriverBuildDoneInfo) {
			ctx := with(context.Background(), TRACE, "db", "driver", "build")
			name := info.Name
			target := info.Target
			l.Log(ctx, "driver build starting...",
				kv.String("name", name),
				kv.String("target", target),
			)

			return func(info trace.DriverBuildDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "driver build done",
						kv.String("name", name),
						kv.String("target", target),
					)
				} else {
					l.Log(WithLevel(ctx, ERROR), "driver build failed",
						kv.Error(info.Error),
						kv.String("name", name),
						kv.String("target", target),
					)
				}
			}
		},
		OnOpen: func(info trace.DriverOpenStartInfo) func(trace.DriverOpenDoneInfo) {
			ctx := with(context.Background(), DEBUG, "db", "driver", "open")
			target := info.Target
			l.Log(ctx, "connection open starting...",
				kv.String("target", target),
			)

			return func(info trace.DriverOpenDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "connection open done",
						kv.String("target", target),
					)
				} else {
					l.Log(WithLevel(ctx, ERROR), "connection open failed",
						kv.Error(info.Error),
						kv.String("target", target),
					)
				}
			}
		},
	}
}
