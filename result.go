package db

import (
	"context"
	"fmt"
	"io"

	"github.com/lachlan/crystal-db/internal/xerrors"
	"github.com/lachlan/crystal-db/internal/xiter"
	"github.com/lachlan/crystal-db/internal/xsync"
	"github.com/lachlan/crystal-db/log"
	"github.com/lachlan/crystal-db/trace"
	"github.com/lachlan/crystal-db/types"
)

type resultState int

const (
	stateUnstarted = resultState(iota)
	stateRowReady
	stateExhausted
	stateClosed
)

func (s resultState) String() string {
	switch s {
	case stateUnstarted:
		return "Unstarted"
	case stateRowReady:
		return "RowReady"
	case stateExhausted:
		return "Exhausted"
	case stateClosed:
		return "Closed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ResultSet drives one query's pending row stream: a forward-only cursor
// over rows with strictly ascending column reads within each row.
//
// A ResultSet is not safe for concurrent use, and exhaustion does not
// release it: Close must be called explicitly. Close is idempotent and
// notifies the owning Statement exactly once.
type ResultSet struct {
	stmt    Statement
	stream  RowStream
	columns []string
	trace   trace.Query

	state       resultState
	row         []types.Value
	columnIndex int

	closeOnce func(ctx context.Context) error
}

type ResultSetOption func(rs *ResultSet)

// WithQueryTrace composes t onto the trace fired by the result set.
func WithQueryTrace(t trace.Query) ResultSetOption {
	return func(rs *ResultSet) {
		rs.trace = rs.trace.Compose(t)
	}
}

// WithQueryLogger wires logging of cursor events through l.
func WithQueryLogger(l log.Logger) ResultSetOption {
	return WithQueryTrace(log.Query(l))
}

// NewResultSet builds the cursor a driver returns from query execution.
// stmt is the owning statement to notify on close, stream feeds the rows.
func NewResultSet(stmt Statement, stream RowStream, opts ...ResultSetOption) *ResultSet {
	rs := &ResultSet{
		stmt:    stmt,
		stream:  stream,
		columns: stream.Columns(),
		state:   stateUnstarted,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(rs)
		}
	}
	rs.closeOnce = xsync.OnceFunc(rs.release)

	return rs
}

// Statement returns the owning statement.
func (rs *ResultSet) Statement() Statement {
	return rs.stmt
}

// ColumnCount reports the invariant number of columns per row.
func (rs *ResultSet) ColumnCount() int {
	return len(rs.columns)
}

// ColumnName returns the name of the column at index.
func (rs *ResultSet) ColumnName(index int) (string, error) {
	if rs.state == stateClosed {
		return "", xerrors.WithStackTrace(ErrResultSetClosed)
	}
	if index < 0 || index >= len(rs.columns) {
		return "", xerrors.WithStackTrace(fmt.Errorf(
			"column index %d out of range [0, %d)", index, len(rs.columns),
		))
	}

	return rs.columns[index], nil
}

// Columns returns a copy of the column names in column order.
func (rs *ResultSet) Columns() []string {
	columns := make([]string, len(rs.columns))
	copy(columns, rs.columns)

	return columns
}

// ColumnNames ranges over the column names. The sequence is pure and
// restartable, it never moves the cursor.
func (rs *ResultSet) ColumnNames() xiter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range rs.columns {
			if !yield(name) {
				return
			}
		}
	}
}

// NextColumnIndex reports the index of the next column eligible for
// reading within the current row. It equals ColumnCount exactly when the
// current row's columns are exhausted.
func (rs *ResultSet) NextColumnIndex() int {
	return rs.columnIndex
}

// NextRow advances the cursor to the next row and resets the column cursor
// to 0. It reports false at end-of-stream and stays false afterwards.
// Fetch failures of the underlying stream propagate unwrapped.
func (rs *ResultSet) NextRow(ctx context.Context) (bool, error) {
	onDone := func(trace.QueryNextRowDoneInfo) {}
	if onNextRow := rs.trace.OnNextRow; onNextRow != nil {
		if done := onNextRow(trace.QueryNextRowStartInfo{}); done != nil {
			onDone = done
		}
	}
	hasRow, err := rs.nextRow(ctx)
	onDone(trace.QueryNextRowDoneInfo{
		HasRow: hasRow,
		Error:  err,
	})

	return hasRow, err
}

func (rs *ResultSet) nextRow(ctx context.Context) (bool, error) {
	switch rs.state {
	case stateClosed:
		return false, xerrors.WithStackTrace(ErrResultSetClosed, xerrors.WithSkipDepth(2))
	case stateExhausted:
		return false, nil
	}

	row, err := rs.stream.Fetch(ctx)
	if err != nil {
		if xerrors.Is(err, io.EOF) {
			rs.state = stateExhausted
			rs.row = nil

			return false, nil
		}

		return false, err
	}
	rs.state = stateRowReady
	rs.row = row
	rs.columnIndex = 0

	return true, nil
}

// ReadValue returns the raw value at the column cursor and advances the
// cursor by one. It is valid only between a successful NextRow and the
// exhaustion of the row's columns.
func (rs *ResultSet) ReadValue() (types.Value, error) {
	switch rs.state {
	case stateClosed:
		return nil, xerrors.WithStackTrace(ErrResultSetClosed)
	case stateUnstarted, stateExhausted:
		return nil, xerrors.WithStackTrace(fmt.Errorf(
			"%w: cursor state is %s", ErrNoCurrentRow, rs.state,
		))
	}
	if rs.columnIndex >= len(rs.row) {
		return nil, xerrors.WithStackTrace(fmt.Errorf(
			"%w: all %d columns consumed", ErrNoMoreColumns, len(rs.row),
		))
	}
	v := rs.row[rs.columnIndex]
	rs.columnIndex++

	return v, nil
}

// Rows ranges over row ordinals, lazily advancing the cursor before each
// yield and stopping at exhaustion or the first failure. The sequence is
// not restartable, the cursor cannot rewind.
func (rs *ResultSet) Rows(ctx context.Context) xiter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i := 0; ; i++ {
			hasRow, err := rs.NextRow(ctx)
			if err != nil {
				yield(i, err)

				return
			}
			if !hasRow {
				return
			}
			if !yield(i, nil) {
				return
			}
		}
	}
}

// Close releases the cursor. Only the first call closes the underlying
// stream and notifies the owning statement; repeated calls are no-ops.
func (rs *ResultSet) Close(ctx context.Context) error {
	onDone := func(trace.QueryCloseDoneInfo) {}
	if onClose := rs.trace.OnClose; onClose != nil {
		if done := onClose(trace.QueryCloseStartInfo{}); done != nil {
			onDone = done
		}
	}
	err := rs.closeOnce(ctx)
	onDone(trace.QueryCloseDoneInfo{Error: err})

	return err
}

func (rs *ResultSet) release(ctx context.Context) error {
	rs.state = stateClosed
	rs.row = nil

	err := rs.stream.Close(ctx)
	if rs.stmt != nil {
		rs.stmt.ReleaseResult()
	}
	if err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}
