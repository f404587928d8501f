package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cubeworks/rampcurve/internal/application/dto"
)

// CSVFormatter writes one record per waypoint in long form, ready for
// spreadsheet or plotting tools:
//
//	plot,title,profile,point,time,temperature
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// Format writes the report as CSV.
func (f *CSVFormatter) Format(report *dto.PlotReport) error {
	w := csv.NewWriter(f.writer)

	if err := w.Write([]string{"plot", "title", "profile", "point", "time", "temperature"}); err != nil {
		return err
	}

	for i, plot := range report.Plots {
		for _, curve := range plot.Curves {
			for j, p := range curve.Points {
				record := []string{
					strconv.Itoa(i + 1),
					plot.Title,
					curve.Name,
					strconv.Itoa(j),
					strconv.FormatFloat(p.Time, 'g', -1, 64),
					strconv.FormatFloat(p.Temperature, 'g', -1, 64),
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
		}
	}

	w.Flush()
	return w.Error()
}
