package entities

import (
	"errors"
	"testing"

	"github.com/cubeworks/rampcurve/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	short := mustProfile(t, "a", values.NewWaypoint(0, 10), values.NewWaypoint(5, 10))
	long := mustProfile(t, "b",
		values.NewWaypoint(0, 20),
		values.NewWaypoint(2, 20),
		values.NewWaypoint(3, 80),
		values.NewWaypoint(9.5, 80),
	)
	single := mustProfile(t, "c", values.NewWaypoint(0, 30))

	c, err := NewCatalog(short, long, single)
	require.NoError(t, err)
	return c
}

func TestCatalog_MaxTime(t *testing.T) {
	c := sampleCatalog(t)

	got, err := c.MaxTime()
	require.NoError(t, err)
	assert.InDelta(t, 9.5, got, 1e-9)
}

func TestCatalog_MaxTime_Empty(t *testing.T) {
	c, err := NewCatalog()
	require.NoError(t, err)

	_, err = c.MaxTime()
	var emptyErr *EmptyCatalogError
	require.True(t, errors.As(err, &emptyErr))
	assert.Contains(t, err.Error(), "max time")
}

func TestCatalog_Lookup(t *testing.T) {
	c := sampleCatalog(t)

	p, err := c.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, "b", p.Name())

	_, err = c.Lookup("missing")
	var unknown *UnknownProfileError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestCatalog_ResolveGroup_PreservesRequestOrder(t *testing.T) {
	c := sampleCatalog(t)

	entries, err := c.ResolveGroup([]string{"b", "a"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Name)
	assert.Equal(t, "b", entries[0].Profile.Name())
	assert.Equal(t, "a", entries[1].Name)
}

func TestCatalog_ResolveGroup_FailsFast(t *testing.T) {
	c := sampleCatalog(t)

	entries, err := c.ResolveGroup([]string{"a", "nope", "also-missing"})
	assert.Nil(t, entries)
	var unknown *UnknownProfileError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
}

func TestCatalog_ResolveGroup_Empty(t *testing.T) {
	entries, err := sampleCatalog(t).ResolveGroup(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewCatalog_DuplicateName(t *testing.T) {
	first, err := NewProfile(values.MustNewProfileName("choc"), 2, []values.Waypoint{values.NewWaypoint(0, 20)})
	require.NoError(t, err)
	second, err := NewProfile(values.MustNewProfileName("choc"), 5, []values.Waypoint{values.NewWaypoint(0, 40)})
	require.NoError(t, err)

	_, err = NewCatalog(first, second)
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "choc", dup.Name)
	assert.Equal(t, 2, dup.FirstLine)
	assert.Equal(t, 5, dup.Line)
	assert.Contains(t, err.Error(), "line 5 redeclares line 2")
}

func TestCatalog_NamesAndSubset(t *testing.T) {
	c := sampleCatalog(t)
	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
	assert.Equal(t, 3, c.Len())

	sub, err := c.Subset([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Names())

	_, err = c.Subset([]string{"zzz"})
	assert.Error(t, err)
}

func TestCatalogAssembler_RejectsDuplicateOnAdd(t *testing.T) {
	first, err := NewProfile(values.MustNewProfileName("choc"), 2, []values.Waypoint{values.NewWaypoint(0, 20)})
	require.NoError(t, err)
	again, err := NewProfile(values.MustNewProfileName("choc"), 4, []values.Waypoint{values.NewWaypoint(0, 30)})
	require.NoError(t, err)
	other, err := NewProfile(values.MustNewProfileName("milk"), 5, []values.Waypoint{values.NewWaypoint(0, 10)})
	require.NoError(t, err)

	a := NewCatalogAssembler(3)
	require.NoError(t, a.Add(first))

	err = a.Add(again)
	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 2, dup.FirstLine)
	assert.Equal(t, 4, dup.Line)

	require.NoError(t, a.Add(other))
	c := a.Catalog()
	assert.Equal(t, []string{"choc", "milk"}, c.Names())

	p, err := c.Lookup("choc")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Line())
}
