package models

import "time"

// ValueKind identifies the variant held by a Value.
type ValueKind uint8

const (
	KindBytes ValueKind = iota
	KindText
	KindInt
	KindFloat
	KindBool
	KindTime
	KindNull

	// Collection kinds are representable so a broken upstream flattener is
	// observable, but the journal encoder rejects them.
	KindList
	KindMap
)

func (k ValueKind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindNull:
		return "null"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a closed tagged variant holding one journal field value. Only
// the member selected by Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Bytes []byte
	Text  string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

func BytesValue(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

func TimeValue(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

func NullValue() Value { return Value{Kind: KindNull} }

// ListValue and MapValue are markers for flattening-contract violations;
// they carry no payload.
func ListValue() Value { return Value{Kind: KindList} }

func MapValue() Value { return Value{Kind: KindMap} }

// IsCollection reports whether the value is a kind the encoder rejects.
func (v Value) IsCollection() bool {
	return v.Kind == KindList || v.Kind == KindMap
}
