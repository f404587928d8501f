package dto

import (
	"time"

	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/domain/values"
)

// PlotReport is what a renderer consumes: one or more plots, each a list of
// named curves, and the time axis bound shared by every plot.
type PlotReport struct {
	GeneratedAt      time.Time      `json:"generated_at" yaml:"generated_at"`
	Title            string         `json:"title" yaml:"title"`
	TemperatureLabel string         `json:"temperature_label" yaml:"temperature_label"`
	RequestID        string         `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Plots            []Plot         `json:"plots" yaml:"plots"`
	TimeAxis         TimeAxis       `json:"time_axis" yaml:"time_axis"`
	BuildID          values.BuildID `json:"build_id" yaml:"build_id"`
}

// TimeAxis is the shared horizontal axis: it runs from 0 to the catalog's
// max time.
type TimeAxis struct {
	Label string  `json:"label" yaml:"label"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

// Plot is one chart.
type Plot struct {
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Curves []Curve `json:"curves" yaml:"curves"`
}

// Curve is one named profile, as (time, temperature) points.
type Curve struct {
	Name   string            `json:"name" yaml:"name"`
	Points []values.Waypoint `json:"points" yaml:"points"`
}

// NewCurve converts a resolved group entry into a curve.
func NewCurve(entry entities.GroupEntry) Curve {
	return Curve{Name: entry.Name, Points: entry.Profile.Waypoints()}
}

// CurveCount returns the number of curves across all plots.
func (r *PlotReport) CurveCount() int {
	n := 0
	for _, p := range r.Plots {
		n += len(p.Curves)
	}
	return n
}
