package analytics

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// PrintSummary renders the per-query outcome table: rows, timing,
// latency percentiles when collected, and which queries ran vs failed.
func PrintSummary(w io.Writer, runID string, reports []Report) {
	fmt.Fprintf(w, "\nSummary of executed queries (run %s):\n", runID)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"query", "rows", "duration", "p95", "p99", "status"})
	for _, report := range reports {
		status := "ok"
		if report.Err != nil {
			status = "failed: " + report.Err.Error()
		}
		table.Append([]string{
			report.Name,
			fmt.Sprintf("%d", report.Rows),
			formatDuration(report.Duration),
			formatDuration(report.P95),
			formatDuration(report.P99),
			status,
		})
	}
	table.Render()
}

func renderTable(w io.Writer, columns []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.AppendBulk(rows)
	table.Render()
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(time.Microsecond).String()
}
