package analytics

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/zap"

	"ecommerce-dataset/internal/database"
)

// Report is the outcome of one query in the battery. A failed query
// carries its error and never aborts the remaining queries.
type Report struct {
	Name     string
	Rows     int
	Duration time.Duration
	P95      time.Duration
	P99      time.Duration
	Err      error
}

type Runner struct {
	db         database.Driver
	resultsDir string
	log        *zap.Logger
}

func NewRunner(db database.Driver, resultsDir string, log *zap.Logger) *Runner {
	return &Runner{db: db, resultsDir: resultsDir, log: log}
}

// RunAll executes the whole battery, printing each result as a table and
// exporting it to one CSV per query (header row always, even for zero
// rows). repeat > 1 reruns each query to collect latency percentiles.
func (r *Runner) RunAll(ctx context.Context, repeat int) ([]Report, error) {
	if repeat < 1 {
		repeat = 1
	}
	if err := os.MkdirAll(r.resultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	reports := make([]Report, 0, len(Battery))
	for _, query := range Battery {
		report := r.runQuery(ctx, query, repeat)
		if report.Err != nil {
			r.log.Error("query failed", zap.String("query", query.Name), zap.Error(report.Err))
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *Runner) runQuery(ctx context.Context, query Query, repeat int) Report {
	fmt.Printf("\nRunning query: %s\n", query.Name)
	fmt.Printf("Description : %s\n", query.Description)

	sqlText := query.ForDialect(r.db.Name())

	// Max latency of 10 seconds, significant figures of 3
	histogram := hdrhistogram.New(1, 10000000000, 3)

	var columns []string
	var rows [][]any
	for i := 0; i < repeat; i++ {
		start := time.Now()
		cols, result, err := r.db.Select(ctx, sqlText)
		if err != nil {
			return Report{Name: query.Name, Err: err}
		}
		histogram.RecordValue(time.Since(start).Microseconds())
		columns, rows = cols, result
	}

	report := Report{
		Name:     query.Name,
		Rows:     len(rows),
		Duration: time.Duration(histogram.Mean()) * time.Microsecond,
	}
	if repeat > 1 {
		report.P95 = time.Duration(histogram.ValueAtQuantile(95)) * time.Microsecond
		report.P99 = time.Duration(histogram.ValueAtQuantile(99)) * time.Microsecond
	}

	fmt.Printf("Execution time: %s | Rows: %d\n", report.Duration, report.Rows)
	if len(rows) == 0 {
		fmt.Println("No records found for this query.")
	} else {
		renderTable(os.Stdout, columns, formatRows(rows))
	}

	path := filepath.Join(r.resultsDir, query.Name+".csv")
	if err := exportCSV(path, columns, rows); err != nil {
		return Report{Name: query.Name, Rows: report.Rows, Duration: report.Duration, Err: fmt.Errorf("exporting results: %w", err)}
	}
	fmt.Printf("Results exported to %s\n", path)
	return report
}

func exportCSV(path string, columns []string, rows [][]any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(formatRow(row)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatRows(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(row)
	}
	return out
}

func formatRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = formatValue(v)
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
