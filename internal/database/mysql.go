package database

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLDriver struct {
	db *sql.DB
}

func (md *MySQLDriver) Connect(ctx context.Context, dsn string) error {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	md.db = db
	return nil
}

func (md *MySQLDriver) Close(ctx context.Context) error {
	return md.db.Close()
}

func (md *MySQLDriver) Name() string {
	return "mysql"
}

// Rebind is a no-op; MySQL uses ?-placeholders natively.
func (md *MySQLDriver) Rebind(query string) string {
	return query
}

func (md *MySQLDriver) ExecuteTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := md.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(sqlTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}
	return tx.Commit()
}

func (md *MySQLDriver) Exec(ctx context.Context, query string, args ...any) error {
	_, err := md.db.ExecContext(ctx, query, args...)
	return err
}

func (md *MySQLDriver) Select(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
	rows, err := md.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, err
		}
		for i, v := range values {
			// go-sql-driver returns text results as []byte
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return columns, out, nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}
