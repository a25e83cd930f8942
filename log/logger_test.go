package log

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/lachlan/crystal-db/internal/kv"
)

func testClock(t *testing.T) clockwork.Clock {
	t.Helper()

	return clockwork.NewFakeClockAt(
		time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	)
}

func TestDefaultLogger(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		var sb strings.Builder
		l := Default(&sb, WithMinLevel(TRACE), WithClock(testClock(t)))

		ctx := with(context.Background(), INFO, "db", "driver", "register")
		l.Log(ctx, "driver registered",
			kv.String("name", "fake"),
			kv.Bool("overwrite", false),
		)

		require.Equal(t,
			"2024-03-01 12:00:00.000 INFO 'db.driver.register' => "+
				`driver registered {"name":"fake","overwrite":"false"}`+"\n",
			sb.String(),
		)
	})
	t.Run("MinLevelFilters", func(t *testing.T) {
		var sb strings.Builder
		l := Default(&sb, WithMinLevel(WARN), WithClock(testClock(t)))

		l.Log(with(context.Background(), INFO, "db"), "dropped")
		require.Empty(t, sb.String())

		l.Log(with(context.Background(), ERROR, "db"), "kept")
		require.Contains(t, sb.String(), "ERROR")
		require.Contains(t, sb.String(), "kept")
	})
	t.Run("NoFields", func(t *testing.T) {
		var sb strings.Builder
		l := Default(&sb, WithClock(testClock(t)))

		l.Log(with(context.Background(), INFO, "db"), "plain")
		require.Equal(t, "2024-03-01 12:00:00.000 INFO 'db' => plain\n", sb.String())
	})
}

func TestLevel(t *testing.T) {
	require.Equal(t, "WARN", WARN.String())
	require.Equal(t, WARN, FromString("warn"))
	require.Equal(t, QUIET, FromString("nonsense"))
}

func TestContext(t *testing.T) {
	ctx := WithNames(context.Background(), "db")
	ctx = WithNames(ctx, "driver")
	require.Equal(t, []string{"db", "driver"}, NamesFromContext(ctx))

	require.Equal(t, TRACE, LevelFromContext(context.Background()))
	require.Equal(t, ERROR, LevelFromContext(WithLevel(context.Background(), ERROR)))
}
