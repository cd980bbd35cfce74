package converter

import (
	"github.com/syssam/veloxconv/dialect"
	"github.com/syssam/veloxconv/internal/numeric"
	"github.com/syssam/veloxconv/schema/field"
	"github.com/syssam/veloxconv/serializer"
)

// Enum converts enumerations. Plain enums are stored by member name; flags
// enums and numeric codes (field.Kind.FlagsLike) are stored as raw integers.
type Enum struct {
	stringColumn
	ser serializer.Serializer
}

// EnumOption configures an Enum converter.
type EnumOption func(*Enum)

// EnumSize sets the length of the name column. Default is DefaultEnumSize.
func EnumSize(size int) EnumOption {
	return func(c *Enum) {
		c.size = size
	}
}

// NewEnum returns an Enum converter.
func NewEnum(d dialect.Service, s serializer.Serializer, opts ...EnumOption) *Enum {
	c := &Enum{
		stringColumn: stringColumn{dialect: d, size: DefaultEnumSize},
		ser:          s,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var enumKinds = []field.Kind{field.KindPlainEnum, field.KindFlagsEnum, field.KindNumericCode}

// ToQuotedString returns the quoted member name of plain enums, and the
// unquoted integer text of flags-like values.
func (c *Enum) ToQuotedString(t *field.Type, v any) (string, error) {
	if v == nil {
		return nullLiteral, nil
	}
	if err := expect(t, enumKinds...); err != nil {
		return "", err
	}
	flags := t.Kind.FlagsLike()
	text, err := c.ser.SerializeRaw(c.normalize(t, v, flags))
	if err != nil {
		return "", err
	}
	if flags {
		return text, nil
	}
	return c.dialect.QuoteValue(text), nil
}

// ToStorageValue returns flags-like values as numbers, bypassing the
// serializer: int64 when the value is a whole number in range, the field's
// Go type otherwise. Plain enums are returned as their member name.
func (c *Enum) ToStorageValue(t *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if err := expect(t, enumKinds...); err != nil {
		return nil, err
	}
	flags := t.Kind.FlagsLike()
	if flags {
		if i, err := numeric.Convert(numeric.Int64Type, v); err == nil {
			return i, nil
		}
		// Fractional or beyond int64, keep the declared numeric type.
		if n, err := numeric.Convert(t.GoType, v); err == nil {
			return n, nil
		}
	}
	return c.ser.SerializeRaw(c.normalize(t, v, flags))
}

// FromStorageValue parses textual values as member names (case-insensitive)
// and converts anything else numerically to the field's Go type.
func (c *Enum) FromStorageValue(t *field.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if err := expect(t, enumKinds...); err != nil {
		return nil, err
	}
	if !isText(v) || t.Enum == nil {
		return numeric.Convert(t.GoType, v)
	}
	i, err := t.Enum.Parse(textOf(v))
	if err != nil {
		return nil, err
	}
	return numeric.Convert(t.GoType, i)
}

// normalize reinterprets integer-valued input: plain enums get their symbolic
// form, flags-like values become int64.
func (c *Enum) normalize(t *field.Type, v any, flags bool) any {
	i, ok := numeric.Int64(v)
	switch {
	case !ok:
		return v
	case flags:
		return i
	default:
		return t.Enum.Format(i)
	}
}

var _ Converter = (*Enum)(nil)
