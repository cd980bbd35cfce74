package converter

import (
	"reflect"

	"github.com/syssam/veloxconv/dialect"
	"github.com/syssam/veloxconv/schema/field"
	"github.com/syssam/veloxconv/serializer"
)

// Reference is the fallback converter for reference-shaped values (maps,
// slices, pointers, interfaces). Values are stored as serialized text in the
// provider's maximum-length text column. Byte sequences are passed to the
// driver untouched.
type Reference struct {
	stringColumn
	ser serializer.Serializer
}

// NewReference returns a Reference converter.
func NewReference(d dialect.Service, s serializer.Serializer) *Reference {
	return &Reference{
		stringColumn: stringColumn{dialect: d},
		ser:          s,
	}
}

// ToQuotedString embeds the full serialized form of v as one quoted literal.
func (c *Reference) ToQuotedString(t *field.Type, v any) (string, error) {
	return quoteSerialized(c.dialect, c.ser, t, v)
}

// ToStorageValue returns byte sequences unchanged and serializes everything else.
func (c *Reference) ToStorageValue(t *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if err := expect(t); err != nil {
		return nil, err
	}
	if isByteSlice(t) {
		return v, nil
	}
	return c.ser.SerializeQuoted(v)
}

// FromStorageValue deserializes the textual form of v into the field's Go type.
func (c *Reference) FromStorageValue(t *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if err := expect(t); err != nil {
		return nil, err
	}
	if isByteSlice(t) {
		if s, ok := v.(string); ok {
			return []byte(s), nil
		}
		return v, nil
	}
	return c.ser.Deserialize(textOf(v), t.GoType)
}

// isByteSlice reports whether t declares a byte sequence, whatever its kind.
func isByteSlice(t *field.Type) bool {
	return t.Kind == field.KindBytes ||
		t.GoType.Kind() == reflect.Slice && t.GoType.Elem().Kind() == reflect.Uint8
}

// quoteSerialized is the ToQuotedString shared by the text-backed fallbacks.
func quoteSerialized(d dialect.Service, s serializer.Serializer, t *field.Type, v any) (string, error) {
	if v == nil {
		return nullLiteral, nil
	}
	if err := expect(t); err != nil {
		return "", err
	}
	text, err := s.SerializeQuoted(v)
	if err != nil {
		return "", err
	}
	return d.QuoteValue(text), nil
}

var _ Converter = (*Reference)(nil)
