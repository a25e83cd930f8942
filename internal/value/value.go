package value

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lachlan/crystal-db/internal/xerrors"
)

var (
	// ErrCannotCast marks a failed cast of a raw column value into a
	// destination of another kind.
	ErrCannotCast = errors.New("cannot cast value")

	errNilDestination = errors.New("destination is nil")
)

// Value is one raw column value tagged with its Kind. The set of
// implementations is closed: drivers construct values through the
// exported constructors only.
type Value interface {
	Kind() Kind
	String() string

	castTo(dst interface{}) error
}

func castError(v Value, dst interface{}) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("%w '%s' (kind '%s') to '%T' destination",
			ErrCannotCast, v.String(), v.Kind(), dst,
		),
		xerrors.WithSkipDepth(2),
	)
}

// Text reports the textual payload of v, when v carries one.
func Text(v Value) (string, bool) {
	if vv, ok := v.(textValue); ok {
		return string(vv), true
	}

	return "", false
}

// Ordinal reports the integral payload of v widened to int64, when v
// carries one.
func Ordinal(v Value) (int64, bool) {
	switch vv := v.(type) {
	case int8Value:
		return int64(vv), true
	case int16Value:
		return int64(vv), true
	case int32Value:
		return int64(vv), true
	case int64Value:
		return int64(vv), true
	case uint8Value:
		return int64(vv), true
	case uint16Value:
		return int64(vv), true
	case uint32Value:
		return int64(vv), true
	case uint64Value:
		return int64(vv), true
	default:
		return 0, false
	}
}

type boolValue bool

func (v boolValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *bool:
		*vv = bool(v)

		return nil
	case **bool:
		*vv = ptrTo(bool(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v boolValue) String() string {
	return "Bool(" + strconv.FormatBool(bool(v)) + ")"
}

func (boolValue) Kind() Kind {
	return KindBool
}

func BoolValue(v bool) Value {
	return boolValue(v)
}

type int8Value int8

func (v int8Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *int8:
		*vv = int8(v)

		return nil
	case **int8:
		*vv = ptrTo(int8(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v int8Value) String() string {
	return "Int8(" + strconv.FormatInt(int64(v), 10) + ")"
}

func (int8Value) Kind() Kind {
	return KindInt8
}

func Int8Value(v int8) Value {
	return int8Value(v)
}

type int16Value int16

func (v int16Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *int16:
		*vv = int16(v)

		return nil
	case **int16:
		*vv = ptrTo(int16(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v int16Value) String() string {
	return "Int16(" + strconv.FormatInt(int64(v), 10) + ")"
}

func (int16Value) Kind() Kind {
	return KindInt16
}

func Int16Value(v int16) Value {
	return int16Value(v)
}

type int32Value int32

func (v int32Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *int32:
		*vv = int32(v)

		return nil
	case **int32:
		*vv = ptrTo(int32(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v int32Value) String() string {
	return "Int32(" + strconv.FormatInt(int64(v), 10) + ")"
}

func (int32Value) Kind() Kind {
	return KindInt32
}

func Int32Value(v int32) Value {
	return int32Value(v)
}

type int64Value int64

func (v int64Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *int64:
		*vv = int64(v)

		return nil
	case **int64:
		*vv = ptrTo(int64(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v int64Value) String() string {
	return "Int64(" + strconv.FormatInt(int64(v), 10) + ")"
}

func (int64Value) Kind() Kind {
	return KindInt64
}

func Int64Value(v int64) Value {
	return int64Value(v)
}

type uint8Value uint8

func (v uint8Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *uint8:
		*vv = uint8(v)

		return nil
	case **uint8:
		*vv = ptrTo(uint8(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v uint8Value) String() string {
	return "Uint8(" + strconv.FormatUint(uint64(v), 10) + ")"
}

func (uint8Value) Kind() Kind {
	return KindUint8
}

func Uint8Value(v uint8) Value {
	return uint8Value(v)
}

type uint16Value uint16

func (v uint16Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *uint16:
		*vv = uint16(v)

		return nil
	case **uint16:
		*vv = ptrTo(uint16(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v uint16Value) String() string {
	return "Uint16(" + strconv.FormatUint(uint64(v), 10) + ")"
}

func (uint16Value) Kind() Kind {
	return KindUint16
}

func Uint16Value(v uint16) Value {
	return uint16Value(v)
}

type uint32Value uint32

func (v uint32Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *uint32:
		*vv = uint32(v)

		return nil
	case **uint32:
		*vv = ptrTo(uint32(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v uint32Value) String() string {
	return "Uint32(" + strconv.FormatUint(uint64(v), 10) + ")"
}

func (uint32Value) Kind() Kind {
	return KindUint32
}

func Uint32Value(v uint32) Value {
	return uint32Value(v)
}

type uint64Value uint64

func (v uint64Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *uint64:
		*vv = uint64(v)

		return nil
	case **uint64:
		*vv = ptrTo(uint64(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v uint64Value) String() string {
	return "Uint64(" + strconv.FormatUint(uint64(v), 10) + ")"
}

func (uint64Value) Kind() Kind {
	return KindUint64
}

func Uint64Value(v uint64) Value {
	return uint64Value(v)
}

type float32Value float32

func (v float32Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *float32:
		*vv = float32(v)

		return nil
	case **float32:
		*vv = ptrTo(float32(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v float32Value) String() string {
	return "Float32(" + strconv.FormatFloat(float64(v), 'g', -1, 32) + ")"
}

func (float32Value) Kind() Kind {
	return KindFloat32
}

func Float32Value(v float32) Value {
	return float32Value(v)
}

type float64Value float64

func (v float64Value) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *float64:
		*vv = float64(v)

		return nil
	case **float64:
		*vv = ptrTo(float64(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v float64Value) String() string {
	return "Float64(" + strconv.FormatFloat(float64(v), 'g', -1, 64) + ")"
}

func (float64Value) Kind() Kind {
	return KindFloat64
}

func Float64Value(v float64) Value {
	return float64Value(v)
}

type textValue string

func (v textValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *string:
		*vv = string(v)

		return nil
	case **string:
		*vv = ptrTo(string(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v textValue) String() string {
	return "Text(" + strconv.Quote(string(v)) + ")"
}

func (textValue) Kind() Kind {
	return KindText
}

func TextValue(v string) Value {
	return textValue(v)
}

type bytesValue []byte

func (v bytesValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *[]byte:
		*vv = []byte(v)

		return nil
	case **[]byte:
		b := []byte(v)
		*vv = &b

		return nil
	default:
		return castError(v, dst)
	}
}

func (v bytesValue) String() string {
	return "Bytes(" + strconv.Quote(string(v)) + ")"
}

func (bytesValue) Kind() Kind {
	return KindBytes
}

func BytesValue(v []byte) Value {
	return bytesValue(v)
}

type uuidValue uuid.UUID

func (v uuidValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *uuid.UUID:
		*vv = uuid.UUID(v)

		return nil
	case **uuid.UUID:
		*vv = ptrTo(uuid.UUID(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v uuidValue) String() string {
	return "Uuid(" + uuid.UUID(v).String() + ")"
}

func (uuidValue) Kind() Kind {
	return KindUUID
}

func UUIDValue(v uuid.UUID) Value {
	return uuidValue(v)
}

type timestampValue time.Time

func (v timestampValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *time.Time:
		*vv = time.Time(v)

		return nil
	case **time.Time:
		*vv = ptrTo(time.Time(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v timestampValue) String() string {
	return "Timestamp(" + time.Time(v).UTC().Format(time.RFC3339Nano) + ")"
}

func (timestampValue) Kind() Kind {
	return KindTimestamp
}

func TimestampValue(v time.Time) Value {
	return timestampValue(v)
}

type intervalValue time.Duration

func (v intervalValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case *time.Duration:
		*vv = time.Duration(v)

		return nil
	case **time.Duration:
		*vv = ptrTo(time.Duration(v))

		return nil
	default:
		return castError(v, dst)
	}
}

func (v intervalValue) String() string {
	return "Interval(" + time.Duration(v).String() + ")"
}

func (intervalValue) Kind() Kind {
	return KindInterval
}

func IntervalValue(v time.Duration) Value {
	return intervalValue(v)
}

type nullValue struct{}

// A null casts only into pointer destinations, which it sets to nil.
func (v nullValue) castTo(dst interface{}) error {
	switch vv := dst.(type) {
	case **bool:
		*vv = nil
	case **int8:
		*vv = nil
	case **int16:
		*vv = nil
	case **int32:
		*vv = nil
	case **int64:
		*vv = nil
	case **uint8:
		*vv = nil
	case **uint16:
		*vv = nil
	case **uint32:
		*vv = nil
	case **uint64:
		*vv = nil
	case **float32:
		*vv = nil
	case **float64:
		*vv = nil
	case **string:
		*vv = nil
	case **[]byte:
		*vv = nil
	case **uuid.UUID:
		*vv = nil
	case **time.Time:
		*vv = nil
	case **time.Duration:
		*vv = nil
	default:
		return castError(v, dst)
	}

	return nil
}

func (nullValue) String() string {
	return "Null"
}

func (nullValue) Kind() Kind {
	return KindNull
}

func NullValue() Value {
	return nullValue{}
}

func ptrTo[T any](v T) *T {
	return &v
}
