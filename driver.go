package db

import (
	"context"
	"net/url"

	"github.com/lachlan/crystal-db/internal/closer"
	"github.com/lachlan/crystal-db/types"
)

// Driver is a named, pluggable implementation capable of producing
// connections to one database engine. The connection target is bound at
// construction and never mutated afterwards.
type Driver interface {
	// URI returns the connection target this driver was built with.
	URI() *url.URL

	// BuildConnection performs whatever handshake or allocation the concrete
	// engine needs. Failures propagate to the caller unwrapped.
	BuildConnection(ctx context.Context) (Connection, error)
}

// DriverFactory builds a Driver bound to a parsed connection URI.
type DriverFactory func(uri *url.URL) (Driver, error)

// Connection is a live session to a database. Everything beyond release
// belongs to the concrete driver.
type Connection interface {
	closer.Closer
}

// Statement is a prepared or executable query owning zero or more result
// cursors.
type Statement interface {
	// ReleaseResult is invoked exactly once per result set, on its first
	// Close, letting the statement reclaim prepared resources.
	ReleaseResult()
}

// RowStream is the per-query contract a concrete driver implements: a
// forward-only row feed with a fixed column shape.
type RowStream interface {
	// Columns returns the column names. The shape is invariant for the
	// stream's lifetime.
	Columns() []string

	// Fetch produces the next row in column order, or io.EOF at
	// end-of-stream.
	Fetch(ctx context.Context) ([]types.Value, error)

	// Close releases the stream's transport resources.
	Close(ctx context.Context) error
}
