package dialect

import (
	"ariga.io/atlas/sql/postgres"
	"github.com/lib/pq"
)

// NewPostgres returns the PostgreSQL dialect. Literals are quoted with
// pq.QuoteLiteral, which switches to the E'' form when backslashes are present.
func NewPostgres(opts ...Option) Service {
	return newDialect(Postgres, pq.QuoteLiteral, StringColumn{
		max:    "TEXT",
		format: postgres.FormatType,
	}, opts)
}
