package xsync

import (
	"context"
	"sync"
)

// OnceFunc makes f callable exactly once: the first call runs f and caches
// its error, subsequent calls return nil without running f again.
func OnceFunc(f func(ctx context.Context) error) func(ctx context.Context) error {
	var once sync.Once

	return func(ctx context.Context) (err error) {
		once.Do(func() {
			err = f(ctx)
		})

		return err
	}
}
