// Package types holds the closed set of raw column value kinds drivers may
// produce, with constructors for driver implementors and the CastTo
// primitive for typed access.
package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/lachlan/crystal-db/internal/value"
)

type (
	Value = value.Value
	Kind  = value.Kind
)

const (
	KindNull      = value.KindNull
	KindBool      = value.KindBool
	KindInt8      = value.KindInt8
	KindInt16     = value.KindInt16
	KindInt32     = value.KindInt32
	KindInt64     = value.KindInt64
	KindUint8     = value.KindUint8
	KindUint16    = value.KindUint16
	KindUint32    = value.KindUint32
	KindUint64    = value.KindUint64
	KindFloat32   = value.KindFloat32
	KindFloat64   = value.KindFloat64
	KindText      = value.KindText
	KindBytes     = value.KindBytes
	KindUUID      = value.KindUUID
	KindTimestamp = value.KindTimestamp
	KindInterval  = value.KindInterval
)

// ErrCannotCast marks a failed cast of a raw value into a destination of
// another kind.
var ErrCannotCast = value.ErrCannotCast

func NullValue() Value {
	return value.NullValue()
}

func BoolValue(v bool) Value {
	return value.BoolValue(v)
}

func Int8Value(v int8) Value {
	return value.Int8Value(v)
}

func Int16Value(v int16) Value {
	return value.Int16Value(v)
}

func Int32Value(v int32) Value {
	return value.Int32Value(v)
}

func Int64Value(v int64) Value {
	return value.Int64Value(v)
}

func Uint8Value(v uint8) Value {
	return value.Uint8Value(v)
}

func Uint16Value(v uint16) Value {
	return value.Uint16Value(v)
}

func Uint32Value(v uint32) Value {
	return value.Uint32Value(v)
}

func Uint64Value(v uint64) Value {
	return value.Uint64Value(v)
}

func Float32Value(v float32) Value {
	return value.Float32Value(v)
}

func Float64Value(v float64) Value {
	return value.Float64Value(v)
}

func TextValue(v string) Value {
	return value.TextValue(v)
}

func BytesValue(v []byte) Value {
	return value.BytesValue(v)
}

func UUIDValue(v uuid.UUID) Value {
	return value.UUIDValue(v)
}

func TimestampValue(v time.Time) Value {
	return value.TimestampValue(v)
}

func IntervalValue(v time.Duration) Value {
	return value.IntervalValue(v)
}

// CastTo casts v into the dst reference.
func CastTo(v Value, dst interface{}) error {
	return value.CastTo(v, dst)
}
