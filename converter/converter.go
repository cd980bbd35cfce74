package converter

import (
	"fmt"
	"slices"

	"github.com/syssam/veloxconv"
	"github.com/syssam/veloxconv/dialect"
	"github.com/syssam/veloxconv/schema/field"
)

// Converter translates values of one family of special types between their Go
// form and their storage form. Implementations are stateless and safe for
// concurrent use.
type Converter interface {
	// ColumnDefinition returns the DDL type used when no length is declared.
	ColumnDefinition() string
	// MaxColumnDefinition returns the DDL type of the provider's
	// maximum-length text column.
	MaxColumnDefinition() string
	// SizedColumnDefinition returns a definition bounded by size, or
	// MaxColumnDefinition when size <= 0.
	SizedColumnDefinition(size int) string
	// ToQuotedString returns v as a literal for direct embedding in SQL text.
	ToQuotedString(t *field.Type, v any) (string, error)
	// ToStorageValue returns v as a bound parameter value.
	ToStorageValue(t *field.Type, v any) (any, error)
	// FromStorageValue reconstitutes a typed value from a raw driver value.
	FromStorageValue(t *field.Type, v any) (any, error)
}

// nullLiteral is the SQL literal written for nil values.
const nullLiteral = "NULL"

// DefaultEnumSize is the default length of enum name columns.
const DefaultEnumSize = 255

// stringColumn implements the column definitions of converters whose values
// are stored as text. A zero size makes ColumnDefinition the maximum-length
// column.
type stringColumn struct {
	dialect dialect.Service
	size    int
}

func (c stringColumn) ColumnDefinition() string {
	return c.dialect.StringColumn().ColumnDefinition(c.size)
}

func (c stringColumn) MaxColumnDefinition() string {
	return c.dialect.StringColumn().MaxColumnDefinition()
}

func (c stringColumn) SizedColumnDefinition(size int) string {
	return c.dialect.StringColumn().ColumnDefinition(size)
}

// expect validates t before conversion. An empty kinds list accepts any kind.
func expect(t *field.Type, kinds ...field.Kind) error {
	switch {
	case t == nil || t.GoType == nil:
		return veloxconv.NewUnsupportedTypeError("<nil>", "missing field type")
	case t.Err != nil:
		return t.Err
	case len(kinds) > 0 && !slices.Contains(kinds, t.Kind):
		return veloxconv.NewUnsupportedTypeError(t.String(), fmt.Sprintf("unexpected kind %s", t.Kind))
	case t.Kind.IsEnum() && t.Enum == nil:
		return veloxconv.NewUnsupportedTypeError(t.String(), "enum has no members")
	}
	return nil
}

// textOf returns the textual form of a raw driver value.
func textOf(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(v)
}

// isText reports whether v is a textual driver value.
func isText(v any) bool {
	switch v.(type) {
	case string, []byte:
		return true
	}
	return false
}
