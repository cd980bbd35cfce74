package dialect

import (
	"strings"

	"ariga.io/atlas/sql/sqlite"
)

// NewSQLite returns the SQLite dialect.
func NewSQLite(opts ...Option) Service {
	return newDialect(SQLite, quoteSQLite, StringColumn{
		max:    "VARCHAR(1000000)",
		format: sqlite.FormatType,
	}, opts)
}

func quoteSQLite(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
