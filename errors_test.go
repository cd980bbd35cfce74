package veloxconv_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/veloxconv"
)

func TestInvalidEnumValueError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := veloxconv.NewInvalidEnumValueError("Color", "Purple")
		assert.Equal(t, `veloxconv: "Purple" is not a valid value for enum Color`, err.Error())
	})

	t.Run("IsInvalidEnumValue", func(t *testing.T) {
		err := veloxconv.NewInvalidEnumValueError("Color", "Purple")
		assert.True(t, errors.Is(err, veloxconv.ErrInvalidEnumValue))
		assert.True(t, veloxconv.IsInvalidEnumValue(err))

		// Wrapped error
		wrapped := fmt.Errorf("column color: %w", err)
		assert.True(t, veloxconv.IsInvalidEnumValue(wrapped))

		// Sentinel error
		assert.True(t, veloxconv.IsInvalidEnumValue(veloxconv.ErrInvalidEnumValue))

		// Non-matching error
		assert.False(t, veloxconv.IsInvalidEnumValue(errors.New("other error")))
		assert.False(t, veloxconv.IsInvalidEnumValue(nil))
	})
}

func TestNumericConversionError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := veloxconv.NewNumericConversionError(int32(-1), "uint64", nil)
		assert.Equal(t, "veloxconv: cannot convert -1 (int32) to uint64", err.Error())

		_, cause := strconv.ParseInt("x", 10, 64)
		err = veloxconv.NewNumericConversionError("x", "int64", cause)
		assert.Contains(t, err.Error(), "invalid syntax")
	})

	t.Run("Unwrap", func(t *testing.T) {
		_, cause := strconv.ParseInt("x", 10, 64)
		err := veloxconv.NewNumericConversionError("x", "int64", cause)
		assert.True(t, errors.Is(err, strconv.ErrSyntax))
		assert.True(t, errors.Is(err, veloxconv.ErrNumericConversion))
	})

	t.Run("IsNumericConversion", func(t *testing.T) {
		err := veloxconv.NewNumericConversionError(300, "uint8", nil)
		assert.True(t, veloxconv.IsNumericConversion(fmt.Errorf("wrap: %w", err)))
		assert.False(t, veloxconv.IsNumericConversion(errors.New("other")))
		assert.False(t, veloxconv.IsNumericConversion(nil))
	})
}

func TestSerializationError(t *testing.T) {
	cause := errors.New("unsupported type: chan int")
	err := veloxconv.NewSerializationError("json", "chan int", cause)
	assert.Equal(t, "veloxconv: serializing chan int as json: unsupported type: chan int", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, veloxconv.IsSerialization(err))
	assert.False(t, veloxconv.IsDeserialization(err))
	assert.False(t, veloxconv.IsSerialization(nil))
}

func TestDeserializationError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		cause := errors.New("unexpected end")
		err := veloxconv.NewDeserializationError("json", "main.Point", `{"x":`, cause)
		assert.Equal(t, `veloxconv: deserializing "{\"x\":" into main.Point as json: unexpected end`, err.Error())

		err = veloxconv.NewDeserializationError("", "main.Point", "abc", cause)
		assert.Equal(t, `veloxconv: deserializing "abc" into main.Point: unexpected end`, err.Error())
	})

	t.Run("Truncate", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		err := veloxconv.NewDeserializationError("yaml", "T", long, errors.New("bad"))
		assert.Less(t, len(err.Error()), 150)
		assert.Contains(t, err.Error(), "...")
	})

	t.Run("IsDeserialization", func(t *testing.T) {
		err := veloxconv.NewDeserializationError("json", "T", "", errors.New("bad"))
		assert.True(t, errors.Is(err, veloxconv.ErrDeserialization))
		assert.True(t, veloxconv.IsDeserialization(fmt.Errorf("wrap: %w", err)))
		assert.False(t, veloxconv.IsDeserialization(nil))
	})
}

func TestUnsupportedTypeError(t *testing.T) {
	err := veloxconv.NewUnsupportedTypeError("string", "")
	assert.Equal(t, "veloxconv: unsupported type string", err.Error())

	err = veloxconv.NewUnsupportedTypeError("chan int", "channels cannot be stored")
	assert.Equal(t, "veloxconv: unsupported type chan int: channels cannot be stored", err.Error())
	assert.True(t, veloxconv.IsUnsupportedType(err))
	assert.True(t, errors.Is(err, veloxconv.ErrUnsupportedType))
	assert.False(t, veloxconv.IsUnsupportedType(nil))
}
