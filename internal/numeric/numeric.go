// Package numeric widens and narrows arbitrary numeric-shaped values into a
// target Go numeric type, failing instead of truncating.
package numeric

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/syssam/veloxconv"
)

var (
	errOverflow   = errors.New("value out of range")
	errFraction   = errors.New("value has a fractional part")
	errNotNumeric = errors.New("value is not numeric")
	errTarget     = errors.New("target is not a numeric type")
)

// Uint64Type is the row-version representation.
var Uint64Type = reflect.TypeFor[uint64]()

// Int64Type is the bound representation of flags-like values.
var Int64Type = reflect.TypeFor[int64]()

// source is a decoded numeric input. Exactly one of the three fields is used,
// chosen by kind.
type source struct {
	kind reflect.Kind // reflect.Int64, reflect.Uint64 or reflect.Float64
	i    int64
	u    uint64
	f    float64
}

// IsNumeric reports whether t is an integer or floating point kind.
func IsNumeric(t reflect.Type) bool {
	return t != nil && (IsInteger(t) || t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64)
}

// IsInteger reports whether t is a signed or unsigned integer kind.
func IsInteger(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// Convert returns v converted to the target type. Named numeric types are
// supported on both sides. A nil v returns nil.
func Convert(target reflect.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if !IsNumeric(target) {
		return nil, veloxconv.NewNumericConversionError(v, typeName(target), errTarget)
	}
	src, err := decode(v)
	if err != nil {
		return nil, veloxconv.NewNumericConversionError(v, target.String(), err)
	}
	out := reflect.New(target).Elem()
	if err := assign(out, src); err != nil {
		return nil, veloxconv.NewNumericConversionError(v, target.String(), err)
	}
	return out.Interface(), nil
}

// ToUint64 converts v to uint64.
func ToUint64(v any) (uint64, error) {
	out, err := Convert(Uint64Type, v)
	if err != nil {
		return 0, err
	}
	if out == nil {
		return 0, veloxconv.NewNumericConversionError(v, "uint64", errNotNumeric)
	}
	return out.(uint64), nil
}

// Int64 returns the integer held by v when v is an integer kind or a string
// that parses as a base-10 int64.
func Int64(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.String:
		i, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func decode(v any) (source, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return source{kind: reflect.Int64, i: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return source{kind: reflect.Uint64, u: rv.Uint()}, nil
	case reflect.Float32, reflect.Float64:
		return source{kind: reflect.Float64, f: rv.Float()}, nil
	case reflect.Bool:
		if rv.Bool() {
			return source{kind: reflect.Int64, i: 1}, nil
		}
		return source{kind: reflect.Int64}, nil
	case reflect.String:
		return parse(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return parse(string(rv.Bytes()))
		}
	}
	return source{}, errNotNumeric
}

func parse(s string) (source, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return source{kind: reflect.Int64, i: i}, nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return source{kind: reflect.Uint64, u: u}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return source{}, errOverflow
		}
		return source{}, errNotNumeric
	}
	return source{kind: reflect.Float64, f: f}, nil
}

func assign(out reflect.Value, src source) error {
	switch out.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch src.kind {
		case reflect.Int64:
			i = src.i
		case reflect.Uint64:
			if src.u > math.MaxInt64 {
				return errOverflow
			}
			i = int64(src.u)
		default:
			if src.f != math.Trunc(src.f) {
				return errFraction
			}
			if src.f < math.MinInt64 || src.f >= math.MaxInt64 {
				return errOverflow
			}
			i = int64(src.f)
		}
		if out.OverflowInt(i) {
			return errOverflow
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var u uint64
		switch src.kind {
		case reflect.Int64:
			if src.i < 0 {
				return errOverflow
			}
			u = uint64(src.i)
		case reflect.Uint64:
			u = src.u
		default:
			if src.f != math.Trunc(src.f) {
				return errFraction
			}
			if src.f < 0 || src.f >= math.MaxUint64 {
				return errOverflow
			}
			u = uint64(src.f)
		}
		if out.OverflowUint(u) {
			return errOverflow
		}
		out.SetUint(u)
	default:
		var f float64
		switch src.kind {
		case reflect.Int64:
			f = float64(src.i)
		case reflect.Uint64:
			f = float64(src.u)
		default:
			f = src.f
		}
		if out.OverflowFloat(f) {
			return errOverflow
		}
		out.SetFloat(f)
	}
	return nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
