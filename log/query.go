package log

import (
	"context"

	"github.com/lachlan/crystal-db/internal/kv"
	"github.com/lachlan/crystal-db/trace"
)

// Query makes trace.Query with logging events
func Query(l Logger) trace.Query {
	return trace.Query{
		OnNextRow: func(trace.QueryNextRowStartInfo) func(trace.QueryNextRowDoneInfo) {
			ctx := with(context.Background(), TRACE, "db", "query", "next", "row")

			return func(info trace.QueryNextRowDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "result set row advance done",
						kv.Bool("hasRow", info.HasRow),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "result set row advance failed",
						kv.Error(info.Error),
					)
				}
			}
		},
		OnClose: func(trace.QueryCloseStartInfo) func(trace.QueryCloseDoneInfo) {
			ctx := with(context.Background(), DEBUG, "db", "query", "close")
			l.Log(ctx, "result set close starting...")

			return func(info trace.QueryCloseDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "result set close done")
				} else {
					l.Log(WithLevel(ctx, WARN), "result set close failed",
						kv.Error(info.Error),
					)
				}
			}
		},
	}
}
