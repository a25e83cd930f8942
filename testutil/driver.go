// Package testutil holds in-memory fakes of the driver-side contracts for
// exercising the registry and the result-cursor protocol without a real
// database.
package testutil

import (
	"context"
	"io"
	"net/url"
	"sync/atomic"

	db "github.com/lachlan/crystal-db"
	"github.com/lachlan/crystal-db/types"
)

var (
	_ db.Driver     = (*FakeDriver)(nil)
	_ db.Connection = (*FakeConnection)(nil)
	_ db.Statement  = (*FakeStatement)(nil)
	_ db.RowStream  = (*RowStream)(nil)
)

// FakeDriver is an always-connecting driver bound to its URI.
type FakeDriver struct {
	uri *url.URL

	// BuildConnectionErr, when set, is returned from BuildConnection.
	BuildConnectionErr error
}

func NewFakeDriver(uri *url.URL) *FakeDriver {
	return &FakeDriver{uri: uri}
}

// RegisterFakeDriver registers the fake under the given scheme and returns
// the factory it registered.
func RegisterFakeDriver(scheme string) db.DriverFactory {
	factory := func(uri *url.URL) (db.Driver, error) {
		return NewFakeDriver(uri), nil
	}
	db.Register(scheme, factory)

	return factory
}

func (d *FakeDriver) URI() *url.URL {
	return d.uri
}

func (d *FakeDriver) BuildConnection(ctx context.Context) (db.Connection, error) {
	if d.BuildConnectionErr != nil {
		return nil, d.BuildConnectionErr
	}

	return &FakeConnection{}, nil
}

// FakeConnection counts closes.
type FakeConnection struct {
	closed atomic.Int64
}

func (c *FakeConnection) Close(context.Context) error {
	c.closed.Add(1)

	return nil
}

func (c *FakeConnection) Closed() bool {
	return c.closed.Load() > 0
}

// FakeStatement records release notifications from its result sets.
type FakeStatement struct {
	released atomic.Int64
}

func (s *FakeStatement) ReleaseResult() {
	s.released.Add(1)
}

// Released reports how many release notifications the statement received.
func (s *FakeStatement) Released() int {
	return int(s.released.Load())
}

// RowStream feeds a fixed in-memory row grid.
type RowStream struct {
	columns []string
	rows    [][]types.Value
	next    int
	closed  bool

	// FetchErr, when set, is returned from every Fetch before any row.
	FetchErr error
	// CloseErr, when set, is returned from Close.
	CloseErr error
}

func NewRowStream(columns []string, rows [][]types.Value) *RowStream {
	return &RowStream{
		columns: columns,
		rows:    rows,
	}
}

func (s *RowStream) Columns() []string {
	return s.columns
}

func (s *RowStream) Fetch(context.Context) ([]types.Value, error) {
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	if s.next == len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++

	return row, nil
}

func (s *RowStream) Close(context.Context) error {
	s.closed = true

	return s.CloseErr
}

func (s *RowStream) Closed() bool {
	return s.closed
}
