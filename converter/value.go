package converter

import (
	"fmt"

	"github.com/syssam/veloxconv/dialect"
	"github.com/syssam/veloxconv/schema/field"
	"github.com/syssam/veloxconv/serializer"
)

// Value converts value-shaped composites (structs, arrays). Column
// definitions and literals match Reference; the bound parameter and read
// paths differ.
type Value struct {
	stringColumn
	ser serializer.Serializer
}

// NewValue returns a Value converter.
func NewValue(d dialect.Service, s serializer.Serializer) *Value {
	return &Value{
		stringColumn: stringColumn{dialect: d},
		ser:          s,
	}
}

// ToQuotedString embeds the full serialized form of v as one quoted literal.
func (c *Value) ToQuotedString(t *field.Type, v any) (string, error) {
	return quoteSerialized(c.dialect, c.ser, t, v)
}

// ToStorageValue parses the string form of v (fmt.Sprint, or v itself for
// strings) back into the field's Go type and returns the structured value.
// It normalizes already-stringified input rather than producing text.
func (c *Value) ToStorageValue(t *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if err := expect(t); err != nil {
		return nil, err
	}
	text, ok := v.(string)
	if !ok {
		text = fmt.Sprint(v)
	}
	return c.ser.Deserialize(text, t.GoType)
}

// FromStorageValue defers to the dialect's default coercion.
func (c *Value) FromStorageValue(t *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if err := expect(t); err != nil {
		return nil, err
	}
	return c.dialect.FromStorageValue(v, t.GoType)
}

var _ Converter = (*Value)(nil)
