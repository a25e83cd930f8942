package value

// Kind enumerates the finite set of scalar column kinds a driver may
// produce. It is the runtime tag of the Value union.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindText
	KindBytes
	KindUUID
	KindTimestamp
	KindInterval
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindText:
		return "Text"
	case KindBytes:
		return "Bytes"
	case KindUUID:
		return "Uuid"
	case KindTimestamp:
		return "Timestamp"
	case KindInterval:
		return "Interval"
	default:
		return "Unknown"
	}
}
