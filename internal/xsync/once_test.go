package xsync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnceFunc(t *testing.T) {
	ctx := context.Background()

	t.Run("RunsExactlyOnce", func(t *testing.T) {
		var calls int
		f := OnceFunc(func(ctx context.Context) error {
			calls++

			return nil
		})
		require.NoError(t, f(ctx))
		require.NoError(t, f(ctx))
		require.Equal(t, 1, calls)
	})
	t.Run("ErrorOnlyFromFirstCall", func(t *testing.T) {
		errFirst := errors.New("first")
		f := OnceFunc(func(ctx context.Context) error {
			return errFirst
		})
		require.ErrorIs(t, f(ctx), errFirst)
		require.NoError(t, f(ctx))
	})
}

func TestMutexWithLock(t *testing.T) {
	var m Mutex
	var value int
	m.WithLock(func() {
		value = 42
	})
	require.Equal(t, 42, value)

	var rw RWMutex
	got := WithRLock(&rw, func() int {
		return value
	})
	require.Equal(t, 42, got)
}
