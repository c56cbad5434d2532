package lineprotocol

import (
	"fmt"
	"math"
	"strconv"
)

// Value holds one of the possible line-protocol field values.
// The zero Value has kind Unknown and cannot be encoded.
type Value struct {
	kind ValueKind

	// number holds the bit pattern of the numeric or boolean payload.
	number uint64

	// str holds the payload when kind is String.
	str string
}

// IntValue returns a Value of kind Int.
func IntValue(x int64) Value {
	return Value{kind: Int, number: uint64(x)}
}

// FloatValue returns a Value of kind Float.
func FloatValue(x float64) Value {
	return Value{kind: Float, number: math.Float64bits(x)}
}

// BoolValue returns a Value of kind Bool.
func BoolValue(x bool) Value {
	n := uint64(0)
	if x {
		n = 1
	}
	return Value{kind: Bool, number: n}
}

// StringValue returns a Value of kind String.
func StringValue(s string) Value {
	return Value{kind: String, str: s}
}

// NewValue returns a Value containing the value of x, which must be of
// type int64, int, float64, bool, string or []byte. It reports whether
// x was representable: any other dynamic type (slices, maps, nil) and
// non-finite floats return false.
func NewValue(x interface{}) (Value, bool) {
	switch x := x.(type) {
	case int64:
		return IntValue(x), true
	case int:
		return IntValue(int64(x)), true
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return Value{}, false
		}
		return FloatValue(x), true
	case bool:
		return BoolValue(x), true
	case string:
		return StringValue(x), true
	case []byte:
		return StringValue(string(x)), true
	}
	return Value{}, false
}

// MustNewValue is like NewValue except that it panics when x is not
// representable as a field value.
func MustNewValue(x interface{}) Value {
	v, ok := NewValue(x)
	if !ok {
		panic(fmt.Errorf("invalid value for NewValue: %T (%#v)", x, x))
	}
	return v
}

// Kind returns the kind of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Equal reports whether v1 and v2 hold the same value.
// Floats compare by bit pattern, so a NaN value equals itself.
func (v1 Value) Equal(v2 Value) bool {
	return v1.kind == v2.kind && v1.number == v2.number && v1.str == v2.str
}

// IntV returns the value as an int64. It panics if v.Kind is not Int.
func (v Value) IntV() int64 {
	v.mustBe(Int)
	return int64(v.number)
}

// FloatV returns the value as a float64. It panics if v.Kind is not Float.
func (v Value) FloatV() float64 {
	v.mustBe(Float)
	return math.Float64frombits(v.number)
}

// BoolV returns the value as a bool. It panics if v.Kind is not Bool.
func (v Value) BoolV() bool {
	v.mustBe(Bool)
	return v.number != 0
}

// StringV returns the value as a string. It panics if v.Kind is not String.
func (v Value) StringV() string {
	v.mustBe(String)
	return v.str
}

// Interface returns the value as an interface. The returned value
// will have a different dynamic type depending on the value kind;
// one of int64 (Int), float64 (Float), string (String), bool (Bool).
// It panics if v is the zero Value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Int:
		return v.IntV()
	case Float:
		return v.FloatV()
	case Bool:
		return v.BoolV()
	case String:
		return v.StringV()
	}
	panic("interface called on unknown value kind")
}

func (v Value) mustBe(k ValueKind) {
	if v.kind != k {
		panic(fmt.Errorf("value has unexpected kind; got %v want %v", v.kind, k))
	}
}

// String returns the value similarly to how it would appear in a
// line-protocol entry, except that strings are quoted according to Go
// rules rather than line-protocol rules.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return fmt.Sprintf("%di", v.IntV())
	case Float:
		return strconv.FormatFloat(v.FloatV(), 'g', -1, 64)
	case Bool:
		if v.BoolV() {
			return "true"
		}
		return "false"
	case String:
		return fmt.Sprintf("%q", v.str)
	}
	return "unknown"
}
