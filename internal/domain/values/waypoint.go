// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import "fmt"

// MinutesPerHour converts ramp rates (degrees per minute) to degrees per
// hour, the unit of the time axis.
const MinutesPerHour = 60

// Waypoint is a single (time, temperature) sample of a profile.
// Waypoints are immutable once produced.
type Waypoint struct {
	Time        float64 `json:"time" yaml:"time"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// NewWaypoint creates a waypoint.
func NewWaypoint(time, temperature float64) Waypoint {
	return Waypoint{Time: time, Temperature: temperature}
}

// String returns the "(time, temperature)" form used in logs and tables.
func (w Waypoint) String() string {
	return fmt.Sprintf("(%g, %g)", w.Time, w.Temperature)
}
