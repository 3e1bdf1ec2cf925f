package attrset

import (
	"fmt"
	"strconv"
)

// Kind tags which arm of Value is populated.
type Kind uint8

// Supported scalar kinds. Zero value KindInvalid never appears in a
// properly constructed Value and is rejected by Encode.
const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

// String renders the Kind name, mirroring the enum-with-String() idiom
// used for bitmask/flag types across the pack.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	default:
		return "Invalid"
	}
}

// Value is a tagged union over the scalar kinds an attribute may hold.
// Only the field matching Kind is meaningful; the rest are zero.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
}

// String constructs a string-valued Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs an integer-valued Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a float-valued Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool constructs a boolean-valued Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports which arm of the union is populated.
func (v Value) Kind() Kind { return v.kind }

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	default:
		return false
	}
}

// encode appends a deterministic, self-delimiting byte representation of v
// to buf and returns the extended slice. The kind byte prefix prevents
// collisions between, e.g., Int(0) and Bool(false).
func (v Value) encode(buf []byte) ([]byte, error) {
	buf = append(buf, byte(v.kind))
	switch v.kind {
	case KindString:
		buf = strconv.AppendQuote(buf, v.str)
	case KindInt:
		buf = strconv.AppendInt(buf, v.i, 10)
	case KindFloat:
		buf = strconv.AppendFloat(buf, v.f, 'g', -1, 64)
	case KindBool:
		buf = strconv.AppendBool(buf, v.b)
	default:
		return nil, fmt.Errorf("attrset: encode Value: %w (kind=%v)", ErrUnhashableValue, v.kind)
	}
	return buf, nil
}

// GoString supports debug printing ("%#v") without exposing internal fields.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("attrset.String(%q)", v.str)
	case KindInt:
		return fmt.Sprintf("attrset.Int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("attrset.Float(%g)", v.f)
	case KindBool:
		return fmt.Sprintf("attrset.Bool(%t)", v.b)
	default:
		return "attrset.Value{<invalid>}"
	}
}
