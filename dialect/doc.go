// Package dialect provides the database dialect services used by the
// converters.
//
// A dialect knows three things the conversion layer cannot decide on its own:
// how to quote a string literal, which DDL type holds text of a given (or
// maximum) length, and how to coerce a raw driver value into an arbitrary Go
// type when no bespoke conversion exists.
//
// # Supported Dialects
//
// The following dialects are supported:
//
//   - Postgres: PostgreSQL database
//   - MySQL: MySQL/MariaDB database
//   - SQLite: SQLite database
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Service Interface
//
//	type Service interface {
//	    Name() string
//	    QuoteValue(s string) string
//	    StringColumn() StringColumn
//	    FromStorageValue(v any, t reflect.Type) (any, error)
//	}
//
// # Usage
//
//	d := dialect.NewPostgres(dialect.WithSerializer(serializer.JSON()))
//	d.QuoteValue("O'Brien")                    // 'O''Brien'
//	d.StringColumn().ColumnDefinition(255)    // a varchar(255) type
//	d.StringColumn().MaxColumnDefinition()    // TEXT
//
// Services are immutable after construction and safe for concurrent use.
package dialect
