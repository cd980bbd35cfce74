package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"ariga.io/atlas/sql/schema"

	"github.com/syssam/veloxconv/serializer"
)

// Dialect names.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Service is the dialect contract consumed by the converters.
type Service interface {
	// Name returns the dialect name (e.g., "postgres").
	Name() string
	// QuoteValue quotes and escapes s as a string literal.
	QuoteValue(s string) string
	// StringColumn returns the text column definitions of the dialect.
	StringColumn() StringColumn
	// FromStorageValue coerces a raw driver value into a value of type t.
	FromStorageValue(v any, t reflect.Type) (any, error)
}

// StringColumn describes the text column types of a dialect.
type StringColumn struct {
	max    string
	format func(schema.Type) (string, error)
}

// MaxColumnDefinition returns the DDL type of the provider's maximum-length
// text column.
func (c StringColumn) MaxColumnDefinition() string {
	return c.max
}

// ColumnDefinition returns the DDL type of a text column bounded by size.
// A size <= 0 returns MaxColumnDefinition.
func (c StringColumn) ColumnDefinition(size int) string {
	if size <= 0 {
		return c.max
	}
	if c.format != nil {
		// Affinity based formatters may drop the size.
		def, err := c.format(&schema.StringType{T: "varchar", Size: size})
		if err == nil && strings.Contains(def, strconv.Itoa(size)) {
			return def
		}
	}
	return fmt.Sprintf("VARCHAR(%d)", size)
}

// Option configures a dialect Service.
type Option func(*sqlDialect)

// WithSerializer sets the serializer used by FromStorageValue to decode text
// into structured types. Default is serializer.JSON().
func WithSerializer(s serializer.Serializer) Option {
	return func(d *sqlDialect) {
		d.ser = s
	}
}

// sqlDialect is the Service implementation shared by all SQL dialects.
type sqlDialect struct {
	name   string
	quote  func(string) string
	column StringColumn
	ser    serializer.Serializer
}

func newDialect(name string, quote func(string) string, column StringColumn, opts []Option) *sqlDialect {
	d := &sqlDialect{
		name:   name,
		quote:  quote,
		column: column,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.ser == nil {
		d.ser = serializer.JSON()
	}
	return d
}

// New returns the Service for the given dialect name.
func New(name string, opts ...Option) (Service, error) {
	switch name {
	case Postgres:
		return NewPostgres(opts...), nil
	case MySQL:
		return NewMySQL(opts...), nil
	case SQLite:
		return NewSQLite(opts...), nil
	default:
		return nil, fmt.Errorf("dialect: unsupported dialect %q", name)
	}
}

func (d *sqlDialect) Name() string { return d.name }

func (d *sqlDialect) QuoteValue(s string) string { return d.quote(s) }

func (d *sqlDialect) StringColumn() StringColumn { return d.column }

var _ Service = (*sqlDialect)(nil)
