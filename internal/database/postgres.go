package database

import (
	"context"
	"database/sql/driver"

	"github.com/jackc/pgx/v5"
)

type PostgresDriver struct {
	conn *pgx.Conn
}

func (pd *PostgresDriver) Connect(ctx context.Context, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	pd.conn = conn
	return nil
}

func (pd *PostgresDriver) Close(ctx context.Context) error {
	return pd.conn.Close(ctx)
}

func (pd *PostgresDriver) Name() string {
	return "postgres"
}

func (pd *PostgresDriver) Rebind(query string) string {
	return rebindPositional(query)
}

func (pd *PostgresDriver) ExecuteTx(ctx context.Context, fn func(tx Tx) error) (err error) {
	tx, err := pd.conn.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p) // re-panic after rollback
		} else if err != nil {
			tx.Rollback(ctx) // err is non-nil; don't change it
		} else {
			err = tx.Commit(ctx) // err is nil; if Commit returns error, update err
		}
	}()

	err = fn(pgxTx{tx: tx})
	return err
}

func (pd *PostgresDriver) Exec(ctx context.Context, query string, args ...any) error {
	_, err := pd.conn.Exec(ctx, pd.Rebind(query), args...)
	return err
}

func (pd *PostgresDriver) Select(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
	rows, err := pd.conn.Query(ctx, pd.Rebind(query), args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name
	}

	var out [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return columns, out, nil
}

// normalizeValue flattens pgtype wrappers (numeric in particular) into
// plain Go values so callers format them uniformly across drivers.
func normalizeValue(v any) any {
	if valuer, ok := v.(driver.Valuer); ok {
		if out, err := valuer.Value(); err == nil {
			return out
		}
	}
	return v
}

type pgxTx struct {
	tx pgx.Tx
}

func (t pgxTx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.Exec(ctx, rebindPositional(query), args...)
	return err
}
