package db

import (
	"fmt"
	"strings"

	"github.com/lachlan/crystal-db/internal/value"
	"github.com/lachlan/crystal-db/internal/xerrors"
)

// NamedDestination pairs a tuple label with the reference a column value is
// read into. The label keys the result and enriches mismatch errors; it is
// never used to seek columns, consumption order stays argument order.
type NamedDestination struct {
	name string
	ref  interface{}
}

func (d NamedDestination) Name() string {
	return d.name
}

func (d NamedDestination) Ref() interface{} {
	return d.ref
}

// Named makes a keyed destination for ScanNamed.
func Named(name string, ref interface{}) NamedDestination {
	return NamedDestination{
		name: name,
		ref:  ref,
	}
}

// Scan reads one column per destination, in argument order, each position
// going through the same mismatch-checked read path as Read.
func (rs *ResultSet) Scan(dst ...interface{}) error {
	for _, d := range dst {
		if err := rs.readTo(d, "Scan"); err != nil {
			return err
		}
	}

	return nil
}

// ScanNamed reads one column per keyed destination, in argument order.
func (rs *ResultSet) ScanNamed(dst ...NamedDestination) error {
	for _, d := range dst {
		if err := rs.readTo(d.ref, "ScanNamed("+d.name+")"); err != nil {
			return err
		}
	}

	return nil
}

// readTo consumes the current column into dst. The column index is captured
// before consumption so mismatch errors report the column actually read.
func (rs *ResultSet) readTo(dst interface{}, op string) error {
	index := rs.columnIndex
	v, err := rs.ReadValue()
	if err != nil {
		return err
	}
	if err = value.CastTo(v, dst); err != nil {
		if !xerrors.Is(err, value.ErrCannotCast) {
			return err
		}

		return xerrors.WithStackTrace(&ColumnTypeMismatchError{
			Context:  op,
			Index:    index,
			Column:   rs.columns[index],
			Actual:   v.Kind().String(),
			Expected: destinationType(dst),
		})
	}

	return nil
}

func destinationType(dst interface{}) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", dst), "*")
}
