package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/cubeworks/rampcurve/internal/domain/values"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

// TableFormatter formats plot reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *dto.PlotReport) error {
	rule := f.colorize(strings.Repeat("─", 80), colorGray)

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "%s\n", f.colorize(report.Title, colorBold))
	fmt.Fprintf(f.writer, "Build: %s\n", report.BuildID)
	fmt.Fprintf(f.writer, "Generated: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "%s: %s to %s\n", report.TimeAxis.Label, num(report.TimeAxis.Min), num(report.TimeAxis.Max))
	fmt.Fprintln(f.writer)

	if len(report.Plots) == 0 {
		fmt.Fprintln(f.writer, "No plots.")
		return nil
	}

	for i, plot := range report.Plots {
		f.formatPlot(i+1, plot, report)
	}

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "%d plots, %d curves\n", len(report.Plots), report.CurveCount())

	return nil
}

// formatPlot formats a single plot.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatPlot(index int, plot dto.Plot, report *dto.PlotReport) {
	header := fmt.Sprintf("Plot %d", index)
	if plot.Title != "" {
		header += ": " + plot.Title
	}
	fmt.Fprintln(f.writer, f.colorize(header, colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	for _, curve := range plot.Curves {
		fmt.Fprintf(f.writer, "%s (%d waypoints)\n", f.colorize(curve.Name, colorCyan), len(curve.Points))
		fmt.Fprintf(f.writer, "  %12s  %12s\n", shortLabel(report.TimeAxis.Label), shortLabel(report.TemperatureLabel))
		for _, p := range curve.Points {
			f.formatPoint(p)
		}
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatPoint(p values.Waypoint) {
	fmt.Fprintf(f.writer, "  %12s  %12s\n", num(p.Time), num(p.Temperature))
}

// shortLabel drops a trailing unit in parentheses so column headers stay narrow.
func shortLabel(label string) string {
	if i := strings.Index(label, " ("); i > 0 {
		return label[:i]
	}
	return label
}

// num renders a float with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
