package db

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDriver matches registry lookups of names never registered.
	ErrUnknownDriver = errors.New("unknown driver")

	// ErrColumnTypeMismatch matches typed reads whose requested type differs
	// from the raw column value's kind.
	ErrColumnTypeMismatch = errors.New("column type mismatch")

	// ErrResultSetClosed matches any operation on a closed result set.
	ErrResultSetClosed = errors.New("result set is closed")

	// ErrNoCurrentRow matches reads outside a successful NextRow.
	ErrNoCurrentRow = errors.New("no current row")

	// ErrNoMoreColumns matches reads past the current row's last column.
	ErrNoMoreColumns = errors.New("no more columns in the current row")
)

// UnknownDriverError reports the name that missed the registry.
type UnknownDriverError struct {
	Name string
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown driver %q", e.Name)
}

func (e *UnknownDriverError) Unwrap() error {
	return ErrUnknownDriver
}

// ColumnTypeMismatchError reports a typed read whose requested type did not
// match the raw value. Index and Column identify the column that was
// consumed; the cursor has already advanced past it.
type ColumnTypeMismatchError struct {
	Context  string
	Index    int
	Column   string
	Actual   string
	Expected string
}

func (e *ColumnTypeMismatchError) Error() string {
	return fmt.Sprintf("%s: column #%d %q holds %s, requested %s",
		e.Context, e.Index, e.Column, e.Actual, e.Expected,
	)
}

func (e *ColumnTypeMismatchError) Unwrap() error {
	return ErrColumnTypeMismatch
}
