package dialect

import (
	"strings"

	"ariga.io/atlas/sql/mysql"
)

// NewMySQL returns the MySQL/MariaDB dialect.
func NewMySQL(opts ...Option) Service {
	return newDialect(MySQL, quoteMySQL, StringColumn{
		max:    "LONGTEXT",
		format: mysql.FormatType,
	}, opts)
}

// mysqlEscaper doubles single quotes and escapes backslashes, which MySQL
// treats as an escape character unless NO_BACKSLASH_ESCAPES is set.
var mysqlEscaper = strings.NewReplacer(`\`, `\\`, "'", "''")

func quoteMySQL(s string) string {
	return "'" + mysqlEscaper.Replace(s) + "'"
}
