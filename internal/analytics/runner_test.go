package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecommerce-dataset/internal/database"
)

// stubDriver serves canned results; failAt makes the nth Select fail.
type stubDriver struct {
	columns []string
	rows    [][]any
	calls   int
	failAt  int
}

func (d *stubDriver) Connect(context.Context, string) error { return nil }
func (d *stubDriver) Close(context.Context) error           { return nil }
func (d *stubDriver) Name() string                          { return "postgres" }
func (d *stubDriver) Rebind(query string) string            { return query }
func (d *stubDriver) ExecuteTx(_ context.Context, fn func(tx database.Tx) error) error {
	return errors.New("not supported")
}
func (d *stubDriver) Exec(context.Context, string, ...any) error { return nil }

func (d *stubDriver) Select(context.Context, string, ...any) ([]string, [][]any, error) {
	d.calls++
	if d.failAt > 0 && d.calls == d.failAt {
		return nil, nil, errors.New("relation does not exist")
	}
	return d.columns, d.rows, nil
}

func TestRunAllEmptyStoreWritesHeaderOnlyExports(t *testing.T) {
	dir := t.TempDir()
	driver := &stubDriver{columns: []string{"customer_id", "total_revenue"}}
	runner := NewRunner(driver, dir, zap.NewNop())

	reports, err := runner.RunAll(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reports, len(Battery))

	for i, query := range Battery {
		assert.NoError(t, reports[i].Err)
		assert.Zero(t, reports[i].Rows)

		file, err := os.Open(filepath.Join(dir, query.Name+".csv"))
		require.NoError(t, err, "missing export for %s", query.Name)
		records, err := csv.NewReader(file).ReadAll()
		file.Close()
		require.NoError(t, err)
		require.Len(t, records, 1, "%s export should be header-only", query.Name)
		assert.Equal(t, driver.columns, records[0])
	}
}

func TestRunAllContinuesPastFailedQuery(t *testing.T) {
	dir := t.TempDir()
	driver := &stubDriver{
		columns: []string{"a"},
		rows:    [][]any{{int64(1)}},
		failAt:  2,
	}
	runner := NewRunner(driver, dir, zap.NewNop())

	reports, err := runner.RunAll(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reports, len(Battery))

	assert.NoError(t, reports[0].Err)
	assert.Error(t, reports[1].Err)
	for _, report := range reports[2:] {
		assert.NoError(t, report.Err)
		assert.Equal(t, 1, report.Rows)
	}

	// The failed query leaves no export behind.
	_, err = os.Stat(filepath.Join(dir, Battery[1].Name+".csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunAllRepeatCollectsPercentiles(t *testing.T) {
	driver := &stubDriver{columns: []string{"a"}}
	runner := NewRunner(driver, t.TempDir(), zap.NewNop())

	reports, err := runner.RunAll(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5*len(Battery), driver.calls)
	for _, report := range reports {
		require.NoError(t, report.Err)
		assert.GreaterOrEqual(t, report.P99, report.P95)
	}
}

func TestQueryForDialect(t *testing.T) {
	var withOverride Query
	for _, q := range Battery {
		if q.MySQL != "" {
			withOverride = q
			break
		}
	}
	require.NotEmpty(t, withOverride.Name, "battery should carry a dialect override")
	assert.Equal(t, withOverride.MySQL, withOverride.ForDialect("mysql"))
	assert.Equal(t, withOverride.SQL, withOverride.ForDialect("postgres"))

	noOverride := Query{SQL: "SELECT 1"}
	assert.Equal(t, "SELECT 1", noOverride.ForDialect("mysql"))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "abc", formatValue("abc"))
	assert.Equal(t, "abc", formatValue([]byte("abc")))
	assert.Equal(t, "2024-11-30", formatValue(time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12.5", formatValue(12.5))
	assert.Equal(t, "42", formatValue(int64(42)))
}

func TestPrintSummaryMarksFailures(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, "run-1", []Report{
		{Name: "ok_query", Rows: 3, Duration: time.Millisecond},
		{Name: "bad_query", Err: errors.New("missing table")},
	})
	out := buf.String()
	assert.Contains(t, out, "ok_query")
	assert.Contains(t, out, "failed: missing table")
	assert.Contains(t, out, "run-1")
}
