package entities

import (
	"testing"

	"github.com/cubeworks/rampcurve/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProfile(t *testing.T, name string, points ...values.Waypoint) *Profile {
	t.Helper()
	p, err := NewProfile(values.MustNewProfileName(name), 0, points)
	require.NoError(t, err)
	return p
}

func TestNewProfile_RequiresWaypoint(t *testing.T) {
	_, err := NewProfile(values.MustNewProfileName("choc"), 2, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one waypoint")
}

func TestNewProfile_RequiresName(t *testing.T) {
	_, err := NewProfile(values.ProfileName{}, 0, []values.Waypoint{values.NewWaypoint(0, 20)})
	assert.Error(t, err)
}

func TestProfile_CopiesWaypoints(t *testing.T) {
	points := []values.Waypoint{values.NewWaypoint(0, 20), values.NewWaypoint(2, 20)}
	p := mustProfile(t, "choc", points...)

	points[1] = values.NewWaypoint(99, 99)
	assert.Equal(t, values.NewWaypoint(2, 20), p.Final(), "constructor input must not alias")

	out := p.Waypoints()
	out[0] = values.NewWaypoint(-1, -1)
	assert.Equal(t, values.NewWaypoint(0, 20), p.Initial(), "accessor output must not alias")
}

func TestProfile_Statistics(t *testing.T) {
	p := mustProfile(t, "choc",
		values.NewWaypoint(0, 20),
		values.NewWaypoint(2, 20),
		values.NewWaypoint(3, 80),
		values.NewWaypoint(6, 80),
		values.NewWaypoint(5, 40),
	)

	assert.Equal(t, 5, p.Len())
	assert.InDelta(t, 6.0, p.MaxTime(), 1e-9, "max time is not the final time on non-monotonic curves")
	assert.InDelta(t, 80.0, p.PeakTemperature(), 1e-9)
	assert.Equal(t, values.NewWaypoint(5, 40), p.Final())
}

func TestProfile_Equal(t *testing.T) {
	a := mustProfile(t, "x", values.NewWaypoint(0, 10), values.NewWaypoint(5, 10))
	b := mustProfile(t, "x", values.NewWaypoint(0, 10), values.NewWaypoint(5, 10))
	c := mustProfile(t, "x", values.NewWaypoint(0, 10))
	d := mustProfile(t, "y", values.NewWaypoint(0, 10), values.NewWaypoint(5, 10))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}
