package db

import (
	"github.com/lachlan/crystal-db/internal/value"
	"github.com/lachlan/crystal-db/internal/xerrors"
)

// Mappable is a composite shape that knows how to construct itself by
// consuming one or more columns from the cursor. Read delegates the whole
// consumption to it.
type Mappable interface {
	ReadFromResult(rs *ResultSet) error
}

// Enum resolves a raw column value to an enumerated constant: textual raw
// values match by symbolic name, integral raw values by ordinal. Both
// methods report unknown constants with their own errors.
type Enum interface {
	DecodeName(name string) error
	DecodeOrdinal(ordinal int64) error
}

// Read consumes column values into a freshly built T. Dispatch priority:
// a *T implementing Mappable constructs itself from the cursor, a *T
// implementing Enum resolves one raw value by name or ordinal, anything
// else is a mismatch-checked scalar read of exactly one column.
func Read[T any](rs *ResultSet) (T, error) {
	var dst T
	switch shape := any(&dst).(type) {
	case Mappable:
		if err := shape.ReadFromResult(rs); err != nil {
			return dst, err
		}

		return dst, nil
	case Enum:
		if err := rs.readEnum(shape); err != nil {
			return dst, err
		}

		return dst, nil
	default:
		if err := rs.readTo(&dst, "Read"); err != nil {
			return dst, err
		}

		return dst, nil
	}
}

// Read2 reads an ordered pair, consuming two columns in order.
func Read2[T1, T2 any](rs *ResultSet) (v1 T1, v2 T2, err error) {
	if v1, err = Read[T1](rs); err != nil {
		return v1, v2, err
	}
	if v2, err = Read[T2](rs); err != nil {
		return v1, v2, err
	}

	return v1, v2, nil
}

// Read3 reads an ordered triple, consuming three columns in order.
func Read3[T1, T2, T3 any](rs *ResultSet) (v1 T1, v2 T2, v3 T3, err error) {
	if v1, err = Read[T1](rs); err != nil {
		return v1, v2, v3, err
	}
	if v2, err = Read[T2](rs); err != nil {
		return v1, v2, v3, err
	}
	if v3, err = Read[T3](rs); err != nil {
		return v1, v2, v3, err
	}

	return v1, v2, v3, nil
}

func (rs *ResultSet) readEnum(dst Enum) error {
	index := rs.columnIndex
	v, err := rs.ReadValue()
	if err != nil {
		return err
	}
	if name, ok := value.Text(v); ok {
		if err = dst.DecodeName(name); err != nil {
			return xerrors.WithStackTrace(err)
		}

		return nil
	}
	if ordinal, ok := value.Ordinal(v); ok {
		if err = dst.DecodeOrdinal(ordinal); err != nil {
			return xerrors.WithStackTrace(err)
		}

		return nil
	}

	return xerrors.WithStackTrace(&ColumnTypeMismatchError{
		Context:  "Read",
		Index:    index,
		Column:   rs.columns[index],
		Actual:   v.Kind().String(),
		Expected: "textual or numeric",
	})
}
