package veloxconv

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for conversion failures.
var (
	// ErrInvalidEnumValue is returned when a stored name does not match any
	// member of the target enumeration.
	ErrInvalidEnumValue = errors.New("veloxconv: invalid enum value")

	// ErrNumericConversion is returned when a value cannot be widened or
	// narrowed to the required numeric representation.
	ErrNumericConversion = errors.New("veloxconv: numeric conversion failed")

	// ErrSerialization is returned when a serializer cannot produce a textual
	// form for a value.
	ErrSerialization = errors.New("veloxconv: serialization failed")

	// ErrDeserialization is returned when stored text does not parse into the
	// declared target type.
	ErrDeserialization = errors.New("veloxconv: deserialization failed")

	// ErrUnsupportedType is returned when a Go type has no special conversion.
	ErrUnsupportedType = errors.New("veloxconv: unsupported type")
)

// InvalidEnumValueError represents a stored enum name with no matching member.
type InvalidEnumValueError struct {
	Type  string // Enum type name
	Value string // Raw value read from storage
}

// Error returns the error string.
func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("veloxconv: %q is not a valid value for enum %s", e.Value, e.Type)
}

// Is reports whether the target error matches InvalidEnumValueError.
// This allows errors.Is(err, ErrInvalidEnumValue) to return true.
func (e *InvalidEnumValueError) Is(err error) bool {
	return err == ErrInvalidEnumValue
}

// NewInvalidEnumValueError returns a new InvalidEnumValueError.
func NewInvalidEnumValueError(typ, value string) *InvalidEnumValueError {
	return &InvalidEnumValueError{Type: typ, Value: value}
}

// IsInvalidEnumValue returns true if the error is an InvalidEnumValueError.
func IsInvalidEnumValue(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidEnumValueError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidEnumValue)
}

// NumericConversionError represents a failed numeric widening or narrowing.
type NumericConversionError struct {
	Value  any    // Source value
	Target string // Target type name
	Err    error  // Underlying cause (optional)
}

// Error returns the error string.
func (e *NumericConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("veloxconv: cannot convert %v (%T) to %s: %v", e.Value, e.Value, e.Target, e.Err)
	}
	return fmt.Sprintf("veloxconv: cannot convert %v (%T) to %s", e.Value, e.Value, e.Target)
}

// Unwrap returns the underlying error.
func (e *NumericConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches NumericConversionError.
func (e *NumericConversionError) Is(err error) bool {
	return err == ErrNumericConversion
}

// NewNumericConversionError returns a new NumericConversionError.
func NewNumericConversionError(value any, target string, err error) *NumericConversionError {
	return &NumericConversionError{Value: value, Target: target, Err: err}
}

// IsNumericConversion returns true if the error is a NumericConversionError.
func IsNumericConversion(err error) bool {
	if err == nil {
		return false
	}
	var e *NumericConversionError
	return errors.As(err, &e) || errors.Is(err, ErrNumericConversion)
}

// SerializationError wraps a serializer failure while encoding a value.
type SerializationError struct {
	Format string // Serializer format (e.g., "json")
	Type   string // Go type of the value
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("veloxconv: serializing %s as %s: %v", e.Type, e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches SerializationError.
func (e *SerializationError) Is(err error) bool {
	return err == ErrSerialization
}

// NewSerializationError returns a new SerializationError.
func NewSerializationError(format, typ string, err error) *SerializationError {
	return &SerializationError{Format: format, Type: typ, Err: err}
}

// IsSerialization returns true if the error is a SerializationError.
func IsSerialization(err error) bool {
	if err == nil {
		return false
	}
	var e *SerializationError
	return errors.As(err, &e) || errors.Is(err, ErrSerialization)
}

// DeserializationError wraps a failure to decode stored text into a Go type.
type DeserializationError struct {
	Format string // Serializer format, empty for dialect coercion
	Type   string // Target Go type
	Text   string // Offending text (may be truncated)
	Err    error  // Underlying error
}

// maxErrorText bounds the stored text echoed back in DeserializationError.
const maxErrorText = 64

// Error returns the error string.
func (e *DeserializationError) Error() string {
	text := e.Text
	if len(text) > maxErrorText {
		text = text[:maxErrorText] + "..."
	}
	if e.Format != "" {
		return fmt.Sprintf("veloxconv: deserializing %q into %s as %s: %v", text, e.Type, e.Format, e.Err)
	}
	return fmt.Sprintf("veloxconv: deserializing %q into %s: %v", text, e.Type, e.Err)
}

// Unwrap returns the underlying error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches DeserializationError.
func (e *DeserializationError) Is(err error) bool {
	return err == ErrDeserialization
}

// NewDeserializationError returns a new DeserializationError.
func NewDeserializationError(format, typ, text string, err error) *DeserializationError {
	return &DeserializationError{Format: format, Type: typ, Text: text, Err: err}
}

// IsDeserialization returns true if the error is a DeserializationError.
func IsDeserialization(err error) bool {
	if err == nil {
		return false
	}
	var e *DeserializationError
	return errors.As(err, &e) || errors.Is(err, ErrDeserialization)
}

// UnsupportedTypeError represents a Go type that no special converter handles.
type UnsupportedTypeError struct {
	Type   string // Go type name
	Reason string // Optional detail
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("veloxconv: unsupported type %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("veloxconv: unsupported type %s", e.Type)
}

// Is reports whether the target error matches UnsupportedTypeError.
func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError.
func NewUnsupportedTypeError(typ, reason string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: typ, Reason: reason}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}
