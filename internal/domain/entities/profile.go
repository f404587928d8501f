// Package entities contains domain entities for the rampcurve domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"fmt"

	"github.com/cubeworks/rampcurve/internal/domain/values"
)

// Profile is a piecewise-linear time/temperature curve compiled from one
// recipe row.
//
// Invariants Enforced:
// - A profile has a non-empty name
// - A profile holds at least one waypoint (the initial temperature at time 0)
//
// Waypoint times are not checked for monotonicity; a recipe with negative
// holds produces a curve that moves backwards in time.
type Profile struct {
	name      values.ProfileName
	waypoints []values.Waypoint
	line      int
}

// NewProfile creates a profile from its waypoints. The slice is copied.
// line is the source record the profile was compiled from, 0 when unknown.
func NewProfile(name values.ProfileName, line int, waypoints []values.Waypoint) (*Profile, error) {
	if name.IsEmpty() {
		return nil, fmt.Errorf("profile name cannot be empty")
	}
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("profile %s must have at least one waypoint", name)
	}

	points := make([]values.Waypoint, len(waypoints))
	copy(points, waypoints)

	return &Profile{name: name, waypoints: points, line: line}, nil
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name.String()
}

// Line returns the source record the profile was compiled from.
func (p *Profile) Line() int {
	return p.line
}

// Waypoints returns a copy of the waypoints in curve order.
func (p *Profile) Waypoints() []values.Waypoint {
	out := make([]values.Waypoint, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// Len returns the number of waypoints.
func (p *Profile) Len() int {
	return len(p.waypoints)
}

// Initial returns the first waypoint.
func (p *Profile) Initial() values.Waypoint {
	return p.waypoints[0]
}

// Final returns the last waypoint.
func (p *Profile) Final() values.Waypoint {
	return p.waypoints[len(p.waypoints)-1]
}

// MaxTime returns the largest time coordinate of the curve.
func (p *Profile) MaxTime() float64 {
	maxTime := p.waypoints[0].Time
	for _, w := range p.waypoints[1:] {
		if w.Time > maxTime {
			maxTime = w.Time
		}
	}
	return maxTime
}

// PeakTemperature returns the highest temperature reached.
func (p *Profile) PeakTemperature() float64 {
	peak := p.waypoints[0].Temperature
	for _, w := range p.waypoints[1:] {
		if w.Temperature > peak {
			peak = w.Temperature
		}
	}
	return peak
}

// Equal reports whether two profiles have the same name and waypoints.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil || !p.name.Equals(other.name) || len(p.waypoints) != len(other.waypoints) {
		return false
	}
	for i := range p.waypoints {
		if p.waypoints[i] != other.waypoints[i] {
			return false
		}
	}
	return true
}
