package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedValueKind is returned when a Value is asked to hold or decode
// anything other than an integer, float, string or boolean.
var ErrUnsupportedValueKind = errors.New("unsupported value kind")

// Kind discriminates the scalar held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a scalar of one of four kinds. The zero Value is invalid.
// Values are comparable with ==.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }
func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind >= KindInt && v.kind <= KindBool }

func (v Value) AsInt() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsBool() (bool, bool)     { return v.b, v.kind == KindBool }

// Interface returns the held scalar as int64, float64, string or bool, or nil
// for an invalid Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// MarshalJSON writes the bare scalar. Floats always carry a fraction or an
// exponent so they never read back as integers.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		return appendFloat(nil, v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	default:
		return nil, fmt.Errorf("encode value: %w: %s", ErrUnsupportedValueKind, v.kind)
	}
}

func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("encode value: non-finite float %v", f)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	if !bytes.ContainsAny(dst[start:], ".eE") {
		dst = append(dst, '.', '0')
	}
	return dst, nil
}

// UnmarshalJSON accepts a JSON number, string or boolean. Numbers without a
// fraction or exponent decode as integers. Objects, arrays and null fail with
// ErrUnsupportedValueKind and leave v unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	if dec.More() {
		return errors.New("decode value: trailing data after scalar")
	}

	var out Value
	switch x := raw.(type) {
	case json.Number:
		n, err := parseNumber(x.String())
		if err != nil {
			return err
		}
		out = n
	case string:
		out = StringValue(x)
	case bool:
		out = BoolValue(x)
	default:
		return fmt.Errorf("decode value: %w: %s", ErrUnsupportedValueKind, describeJSON(raw))
	}

	*v = out
	return nil
}

func parseNumber(s string) (Value, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("decode value: float %s: %w", s, err)
		}
		return FloatValue(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("decode value: integer %s: %w", s, err)
	}
	return IntValue(i), nil
}

func describeJSON(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
