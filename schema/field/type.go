package field

import (
	"fmt"
	"reflect"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/internal/numeric"
)

// A Kind is the storage strategy of a field type. It is computed once when
// the type is built and never re-derived at conversion time.
type Kind uint8

// List of field kinds.
const (
	KindInvalid Kind = iota
	KindPlainEnum
	KindFlagsEnum
	KindNumericCode
	KindReference
	KindValue
	KindRowVersion
	KindBytes
	endKinds
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindPlainEnum:   "enum",
	KindFlagsEnum:   "flags",
	KindNumericCode: "numeric_code",
	KindReference:   "reference",
	KindValue:       "value",
	KindRowVersion:  "row_version",
	KindBytes:       "bytes",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports if the kind is one of the known kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < endKinds
}

// IsEnum reports whether the kind is a declared enumeration.
func (k Kind) IsEnum() bool {
	return k == KindPlainEnum || k == KindFlagsEnum
}

// FlagsLike reports whether values of the kind are stored as raw integers:
// bit-flag enums and plain numeric types used in place of an enum.
func (k Kind) FlagsLike() bool {
	return k == KindFlagsEnum || k == KindNumericCode
}

// Type describes the declared Go type of a column. Types are read-only after
// construction and may be shared across goroutines.
type Type struct {
	Kind   Kind
	GoType reflect.Type
	Enum   *EnumValues // Member table for KindPlainEnum and KindFlagsEnum.
	Err    error // Construction error, if any.
}

// String returns the Go type name.
func (t *Type) String() string {
	if t == nil || t.GoType == nil {
		return "<nil>"
	}
	return t.GoType.String()
}

// Enum returns the type of a plain enumeration backed by the integer type of v.
//
//	type Color int
//
//	field.Enum(Color(0),
//	    field.Member{Name: "Red", Value: 0},
//	    field.Member{Name: "Green", Value: 1},
//	)
func Enum(v any, members ...Member) *Type {
	return enumType(KindPlainEnum, v, members)
}

// Flags returns the type of a bit-flag enumeration backed by the integer type of v.
func Flags(v any, members ...Member) *Type {
	return enumType(KindFlagsEnum, v, members)
}

func enumType(kind Kind, v any, members []Member) *Type {
	t := newType(kind, v)
	if t.Err != nil {
		return t
	}
	if !numeric.IsInteger(t.GoType) {
		t.Err = veloxconv.NewUnsupportedTypeError(t.String(), "enum must be backed by an integer type")
		return t
	}
	e, err := newEnum(t.String(), kind == KindFlagsEnum, members)
	if err != nil {
		t.Err = fmt.Errorf("field: %s: %w", t, err)
		return t
	}
	t.Enum = e
	return t
}

// NumericCode returns the type of a plain numeric column holding enum-like
// codes without a declared enum type.
func NumericCode(v any) *Type {
	t := newType(KindNumericCode, v)
	if t.Err == nil && !numeric.IsNumeric(t.GoType) {
		t.Err = veloxconv.NewUnsupportedTypeError(t.String(), "numeric code must be a numeric type")
	}
	return t
}

// RowVersion returns the type of a row-version column. The Go type must be
// an integer type, usually uint64.
func RowVersion(v any) *Type {
	t := newType(KindRowVersion, v)
	if t.Err == nil && !numeric.IsInteger(t.GoType) {
		t.Err = veloxconv.NewUnsupportedTypeError(t.String(), "row version must be an integer type")
	}
	return t
}

// Reference returns the type of a reference-shaped value (map, slice, pointer
// or interface) stored as serialized text. Byte slices get KindBytes.
func Reference(v any) *Type {
	t := newType(KindReference, v)
	switch {
	case t.Err != nil:
	case isBytes(t.GoType):
		t.Kind = KindBytes
	case !isReference(t.GoType):
		t.Err = veloxconv.NewUnsupportedTypeError(t.String(), "not a reference type")
	}
	return t
}

// Value returns the type of a value-shaped composite (struct or array)
// stored as serialized text.
func Value(v any) *Type {
	t := newType(KindValue, v)
	if t.Err == nil && !isValue(t.GoType) {
		t.Err = veloxconv.NewUnsupportedTypeError(t.String(), "not a struct or array type")
	}
	return t
}

// Bytes returns the type of a byte sequence passed to the driver untouched.
func Bytes(v any) *Type {
	t := newType(KindBytes, v)
	if t.Err == nil && !isBytes(t.GoType) {
		t.Err = veloxconv.NewUnsupportedTypeError(t.String(), "not a byte slice")
	}
	return t
}

// Classify builds the type of v following the default rules:
//
//   - Enumer implementations are enums (flags if they implement FlagsEnumer)
//   - byte slices are Bytes
//   - numeric types are NumericCode
//   - structs and arrays are Value
//   - maps, slices, pointers and interfaces are Reference
//
// Any other type, including string and bool, has no special conversion.
func Classify(v any) *Type {
	if rt, ok := v.(reflect.Type); ok {
		return ClassifyType(rt)
	}
	return ClassifyType(reflect.TypeOf(v))
}

// ClassifyType is like Classify but takes the reflect.Type directly.
func ClassifyType(rt reflect.Type) *Type {
	if rt == nil {
		return &Type{Err: veloxconv.NewUnsupportedTypeError("<nil>", "missing Go type")}
	}
	zero := reflect.Zero(rt).Interface()
	if e, ok := zero.(Enumer); ok && numeric.IsInteger(rt) {
		kind := KindPlainEnum
		if f, ok := zero.(FlagsEnumer); ok && f.IsFlags() {
			kind = KindFlagsEnum
		}
		return enumType(kind, rt, e.EnumMembers())
	}
	switch {
	case isBytes(rt):
		return Bytes(rt)
	case numeric.IsNumeric(rt):
		return NumericCode(rt)
	case isValue(rt):
		return Value(rt)
	case isReference(rt):
		return Reference(rt)
	}
	return &Type{GoType: rt, Err: veloxconv.NewUnsupportedTypeError(rt.String(), "no special conversion")}
}

// newType resolves the Go type from a sample value or a reflect.Type.
func newType(kind Kind, v any) *Type {
	t := &Type{Kind: kind}
	switch v := v.(type) {
	case nil:
		t.Err = veloxconv.NewUnsupportedTypeError("<nil>", "missing Go type")
	case reflect.Type:
		t.GoType = v
	default:
		t.GoType = reflect.TypeOf(v)
	}
	return t
}

func isBytes(rt reflect.Type) bool {
	return rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
}

func isValue(rt reflect.Type) bool {
	return rt.Kind() == reflect.Struct || rt.Kind() == reflect.Array
}

func isReference(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return true
	}
	return false
}
