package database

import (
	"context"
	"strconv"
	"strings"
)

// Tx is the slice of a driver transaction the loader needs.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) error
}

// Driver abstracts the relational backends. Queries are written with
// ?-placeholders and passed through Rebind for the dialect's native
// form.
type Driver interface {
	Connect(ctx context.Context, dsn string) error
	Close(ctx context.Context) error
	Name() string
	Rebind(query string) string
	// ExecuteTx runs fn inside a transaction, rolling back on error or
	// panic and committing otherwise.
	ExecuteTx(ctx context.Context, fn func(tx Tx) error) error
	Exec(ctx context.Context, query string, args ...any) error
	// Select runs a read-only query and returns the projected column
	// names plus all rows. Columns are returned even for empty results.
	Select(ctx context.Context, query string, args ...any) (columns []string, rows [][]any, err error)
}

// rebindPositional rewrites ?-placeholders as $1..$n.
func rebindPositional(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Placeholders renders an n-column values group, e.g. "(?, ?, ?)".
func Placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return "(" + strings.Join(marks, ", ") + ")"
}
