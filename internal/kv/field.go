package kv

import (
	"fmt"
	"strconv"
	"strings"
)

type Type int

const (
	InvalidType Type = iota
	IntType
	StringType
	BoolType
	StringsType
	ErrorType
	StringerType
)

// KeyValue is a typed log field. A zero KeyValue is invalid.
type KeyValue struct {
	ftype Type
	key   string

	vint      int64
	vstr      string
	vbool     bool
	verr      error
	vstrs     []string
	vstringer fmt.Stringer
}

func (f KeyValue) Type() Type {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

// String renders the field value; it does not include the key.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.vbool)
	case StringsType:
		return "[" + strings.Join(f.vstrs, ",") + "]"
	case ErrorType:
		if f.verr == nil {
			return "<nil>"
		}

		return f.verr.Error()
	case StringerType:
		return f.vstringer.String()
	default:
		panic(fmt.Sprintf("unknown type %d", f.ftype))
	}
}

// ErrorValue returns the payload of an ErrorType field, nil otherwise.
func (f KeyValue) ErrorValue() error {
	return f.verr
}

func Int(k string, v int) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: v}
}

func String(k, v string) KeyValue {
	return KeyValue{ftype: StringType, key: k, vstr: v}
}

func Bool(k string, v bool) KeyValue {
	return KeyValue{ftype: BoolType, key: k, vbool: v}
}

func Strings(k string, v []string) KeyValue {
	return KeyValue{ftype: StringsType, key: k, vstrs: v}
}

func Error(v error) KeyValue {
	return KeyValue{ftype: ErrorType, key: "error", verr: v}
}

func Stringer(k string, v fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: k, vstringer: v}
}
