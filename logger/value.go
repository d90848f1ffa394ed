package logger

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Kind identifies the payload of a Value.
type Kind uint8

// Value kinds. InvalidKind is the zero Kind.
const (
	InvalidKind Kind = iota
	TextKind
	CharKind
	ByteKind
	Int8Kind
	Int16Kind
	Int32Kind
	IntKind
	Int64Kind
	Uint16Kind
	Uint32Kind
	UintKind
	Uint64Kind
	Float32Kind
	Float64Kind
)

var kindNames = [...]string{
	InvalidKind: "invalid",
	TextKind:    "text",
	CharKind:    "char",
	ByteKind:    "byte",
	Int8Kind:    "int8",
	Int16Kind:   "int16",
	Int32Kind:   "int32",
	IntKind:     "int",
	Int64Kind:   "int64",
	Uint16Kind:  "uint16",
	Uint32Kind:  "uint32",
	UintKind:    "uint",
	Uint64Kind:  "uint64",
	Float32Kind: "float32",
	Float64Kind: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// bits returns the width used for hexadecimal rendering.
func (k Kind) bits() int {
	switch k {
	case ByteKind, Int8Kind:
		return 8
	case Int16Kind, Uint16Kind:
		return 16
	case CharKind, Int32Kind, Uint32Kind, Float32Kind:
		return 32
	case IntKind, UintKind:
		return strconv.IntSize
	default:
		return 64
	}
}

// Value holds exactly one loggable primitive. The zero Value is invalid.
type Value struct {
	kind Kind
	s    string
	i    int64
	u    uint64
	f    float64
}

// Constructors, one per Kind.

func Text(s string) Value { return Value{kind: TextKind, s: s} }
func Char(r rune) Value { return Value{kind: CharKind, i: int64(r)} }
func Byte(b byte) Value { return Value{kind: ByteKind, u: uint64(b)} }
func Int8(n int8) Value { return Value{kind: Int8Kind, i: int64(n)} }
func Int16(n int16) Value { return Value{kind: Int16Kind, i: int64(n)} }
func Int32(n int32) Value { return Value{kind: Int32Kind, i: int64(n)} }
func Int(n int) Value { return Value{kind: IntKind, i: int64(n)} }
func Int64(n int64) Value { return Value{kind: Int64Kind, i: n} }
func Uint16(n uint16) Value { return Value{kind: Uint16Kind, u: uint64(n)} }
func Uint32(n uint32) Value { return Value{kind: Uint32Kind, u: uint64(n)} }
func Uint(n uint) Value { return Value{kind: UintKind, u: uint64(n)} }
func Uint64(n uint64) Value { return Value{kind: Uint64Kind, u: n} }
func Float32(f float32) Value { return Value{kind: Float32Kind, f: float64(f)} }
func Float64(f float64) Value { return Value{kind: Float64Kind, f: f} }

// Kind reports the payload kind.
func (v Value) Kind() Kind { return v.kind }

// String returns the decimal form of v, or a placeholder for invalid values.
func (v Value) String() string {
	s, err := Stringify(v, false)
	if err != nil {
		return "!(" + v.kind.String() + ")"
	}
	return s
}

// nilText is the text form of nil arguments.
const nilText = "<nil>"

// ValueOf wraps a dynamically typed value. Strings, every integer and float
// type, fmt.Stringer and error are accepted; anything else yields an
// *UnsupportedTypeError. An int32 is an integer; use Char for runes.
// A nil argument, or a nil pointer whose Error or String method panics,
// becomes the text "<nil>".
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Text(nilText), nil
	case Value:
		if t.kind == InvalidKind || int(t.kind) >= len(kindNames) {
			return Value{}, errors.WithStack(&UnsupportedTypeError{Kind: t.kind})
		}
		return t, nil
	case string:
		return Text(t), nil
	case uint8:
		return Byte(t), nil
	case int8:
		return Int8(t), nil
	case int16:
		return Int16(t), nil
	case int32:
		return Int32(t), nil
	case int:
		return Int(t), nil
	case int64:
		return Int64(t), nil
	case uint16:
		return Uint16(t), nil
	case uint32:
		return Uint32(t), nil
	case uint:
		return Uint(t), nil
	case uint64:
		return Uint64(t), nil
	case float32:
		return Float32(t), nil
	case float64:
		return Float64(t), nil
	case error:
		return methodText(x, func() string { return t.Error() })
	case fmt.Stringer:
		return methodText(x, func() string { return t.String() })
	}
	return Value{}, errors.WithStack(&UnsupportedTypeError{Value: x})
}

// methodText runs an Error or String method the way fmt does: a panic on a
// nil pointer receiver renders as "<nil>", any other panic is returned.
func methodText(x any, method func() string) (v Value, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			v, err = Text(nilText), nil
			return
		}
		v, err = Value{}, errors.Errorf("logger: %T method panicked: %v", x, p)
	}()
	return Text(method()), nil
}

// Stringify renders v in decimal, or as fixed-width 0x-prefixed lowercase
// hexadecimal when hex is set. Text is never rendered as hex.
func Stringify(v Value, hex bool) (string, error) {
	switch v.kind {
	case TextKind:
		return v.s, nil
	case CharKind:
		if !hex {
			return string(rune(v.i)), nil
		}
		return hexString(uint64(uint32(v.i)), 32), nil
	case Int8Kind, Int16Kind, Int32Kind, IntKind, Int64Kind:
		if !hex {
			return strconv.FormatInt(v.i, 10), nil
		}
		return hexString(uint64(v.i), v.kind.bits()), nil
	case ByteKind, Uint16Kind, Uint32Kind, UintKind, Uint64Kind:
		if !hex {
			return strconv.FormatUint(v.u, 10), nil
		}
		return hexString(v.u, v.kind.bits()), nil
	case Float32Kind:
		if !hex {
			return strconv.FormatFloat(v.f, 'f', -1, 32), nil
		}
		return hexString(uint64(math.Float32bits(float32(v.f))), 32), nil
	case Float64Kind:
		if !hex {
			return strconv.FormatFloat(v.f, 'f', -1, 64), nil
		}
		return hexString(math.Float64bits(v.f), 64), nil
	}
	return "", errors.WithStack(&UnsupportedTypeError{Kind: v.kind})
}

// hexString renders the low bits of u as 0x followed by bits/4 digits.
func hexString(u uint64, bits int) string {
	if bits < 64 {
		u &= 1<<uint(bits) - 1
	}
	digits := strconv.FormatUint(u, 16)
	width := bits / 4
	buf := make([]byte, 0, 2+width)
	buf = append(buf, "0x"...)
	for i := len(digits); i < width; i++ {
		buf = append(buf, '0')
	}
	return string(append(buf, digits...))
}
