package db_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	db "github.com/lachlan/crystal-db"
	"github.com/lachlan/crystal-db/internal/xtest"
	"github.com/lachlan/crystal-db/log"
	"github.com/lachlan/crystal-db/testutil"
	"github.com/lachlan/crystal-db/trace"
)

func TestOpenWithTrace(t *testing.T) {
	ctx := xtest.Context(t)

	testutil.RegisterFakeDriver("traced")
	t.Cleanup(func() {
		db.Unregister("traced")
	})

	var (
		opened   []string
		resolved []string
	)
	conn, err := db.Open(ctx, "traced://localhost/db", db.WithTrace(trace.Driver{
		OnResolve: func(info trace.DriverResolveStartInfo) func(trace.DriverResolveDoneInfo) {
			resolved = append(resolved, info.Name)

			return nil
		},
		OnOpen: func(info trace.DriverOpenStartInfo) func(trace.DriverOpenDoneInfo) {
			opened = append(opened, info.Target)

			return func(info trace.DriverOpenDoneInfo) {
				require.NoError(t, info.Error)
			}
		},
	}))
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))
	require.Equal(t, []string{"traced"}, resolved)
	require.Equal(t, []string{"traced://localhost/db"}, opened)
}

func TestOpenWithLogger(t *testing.T) {
	ctx := xtest.Context(t)

	testutil.RegisterFakeDriver("logged")
	t.Cleanup(func() {
		db.Unregister("logged")
	})

	var sb strings.Builder
	logger := log.Default(&sb, log.WithMinLevel(log.TRACE))

	_, err := db.Open(ctx, "logged://localhost/db", db.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, sb.String(), "connection open done")

	sb.Reset()
	_, err = db.Open(ctx, "ghost://localhost/db", db.WithLogger(logger))
	require.ErrorIs(t, err, db.ErrUnknownDriver)
	require.Contains(t, sb.String(), "driver resolve failed")
}

func TestResultSetWithQueryTrace(t *testing.T) {
	ctx := xtest.Context(t)

	var (
		rowAdvances int
		closes      int
	)
	rs := db.NewResultSet(&testutil.FakeStatement{}, namesAndAges(),
		db.WithQueryTrace(trace.Query{
			OnNextRow: func(trace.QueryNextRowStartInfo) func(trace.QueryNextRowDoneInfo) {
				return func(info trace.QueryNextRowDoneInfo) {
					if info.HasRow {
						rowAdvances++
					}
				}
			},
			OnClose: func(trace.QueryCloseStartInfo) func(trace.QueryCloseDoneInfo) {
				closes++

				return nil
			},
		}),
	)

	for {
		hasRow, err := rs.NextRow(ctx)
		require.NoError(t, err)
		if !hasRow {
			break
		}
	}
	require.NoError(t, rs.Close(ctx))
	require.NoError(t, rs.Close(ctx))

	require.Equal(t, 2, rowAdvances)
	require.Equal(t, 2, closes)
}
