package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	apperrors "github.com/cubeworks/rampcurve/internal/application/errors"
	"github.com/cubeworks/rampcurve/internal/application/ports"
	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/domain/services"
	"github.com/cubeworks/rampcurve/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeLoader struct {
	err  error
	rows []entities.InstructionRow
}

func (f *fakeRecipeLoader) LoadRecipes(string) ([]entities.InstructionRow, error) {
	return f.rows, f.err
}

type fakePlotSetLoader struct {
	err    error
	groups []entities.PlotGroup
}

func (f *fakePlotSetLoader) LoadPlotSet(string) ([]entities.PlotGroup, error) {
	return f.groups, f.err
}

type sequentialBuilder struct{}

func (sequentialBuilder) Build(_ context.Context, rows []entities.InstructionRow) (*entities.Catalog, error) {
	return services.NewCatalogBuilder(nil).Build(rows)
}

type fakeBuilderFactory struct {
	got dto.ExecutionOptions
}

func (f *fakeBuilderFactory) CreateBuilder(opts dto.ExecutionOptions) ports.CatalogBuilder {
	f.got = opts
	return sequentialBuilder{}
}

var testChart = ports.ChartSettings{
	Title:            "Temperature Profiles",
	TimeLabel:        "Time (hours)",
	TemperatureLabel: "Temperature (C)",
}

func recipeRows() []entities.InstructionRow {
	return []entities.InstructionRow{
		entities.NewInstructionRow(2, "choc", "20", "2", "1", "80", "3"),
		entities.NewInstructionRow(3, "x", "10"),
		entities.NewInstructionRow(4, "y", "10", "5"),
	}
}

func curveNames(p dto.Plot) []string {
	names := make([]string, len(p.Curves))
	for i, c := range p.Curves {
		names[i] = c.Name
	}
	return names
}

func TestCompileRecipesUseCase_Execute(t *testing.T) {
	factory := &fakeBuilderFactory{}
	uc := NewCompileRecipesUseCase(&fakeRecipeLoader{rows: recipeRows()}, factory, testChart, nil)

	report, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{
		RecipePath: "recipe.csv",
		Metadata:   dto.RequestMetadata{RequestID: "req-1"},
		Execution:  dto.ExecutionOptions{Parallel: true, MaxConcurrentRows: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.ExecutionOptions{Parallel: true, MaxConcurrentRows: 3}, factory.got)
	assert.False(t, report.BuildID.IsZero())
	assert.Equal(t, "req-1", report.RequestID)
	assert.Equal(t, "Temperature Profiles", report.Title)
	assert.Equal(t, "Time (hours)", report.TimeAxis.Label)
	assert.InDelta(t, 6.0, report.TimeAxis.Max, 1e-9)

	require.Len(t, report.Plots, 1)
	assert.Equal(t, []string{"choc", "x", "y"}, curveNames(report.Plots[0]))
	assert.Equal(t, []values.Waypoint{
		values.NewWaypoint(0, 20), values.NewWaypoint(2, 20), values.NewWaypoint(3, 80), values.NewWaypoint(6, 80),
	}, report.Plots[0].Curves[0].Points)
}

func TestCompileRecipesUseCase_FilterKeepsFullTimeAxis(t *testing.T) {
	uc := NewCompileRecipesUseCase(&fakeRecipeLoader{rows: recipeRows()}, &fakeBuilderFactory{}, testChart, nil)

	report, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{
		Filters: dto.FilterOptions{FilterExpression: "peak < 50", ExcludeNames: []string{"x"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"y"}, curveNames(report.Plots[0]))
	assert.InDelta(t, 6.0, report.TimeAxis.Max, 1e-9, "axis spans the whole catalog")
}

func TestCompileRecipesUseCase_InvalidFilter(t *testing.T) {
	loader := &fakeRecipeLoader{err: errors.New("must not be called")}
	uc := NewCompileRecipesUseCase(loader, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{
		Filters: dto.FilterOptions{FilterExpression: "severity == 'high'"},
	})

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "--filter", validationErr.Field)
}

func TestCompileRecipesUseCase_UnknownIncludedName(t *testing.T) {
	uc := NewCompileRecipesUseCase(&fakeRecipeLoader{rows: recipeRows()}, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{
		Filters: dto.FilterOptions{IncludeNames: []string{"mocha"}},
	})

	var unknown *entities.UnknownProfileError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "mocha", unknown.Name)
}

func TestCompileRecipesUseCase_PropagatesCompileErrors(t *testing.T) {
	rows := append(recipeRows(), entities.NewInstructionRow(5, "z", "10", "5", "2"))
	uc := NewCompileRecipesUseCase(&fakeRecipeLoader{rows: rows}, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{})

	var parseErr *entities.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, err.Error(), "failed to compile recipes")
}

func TestCompileRecipesUseCase_EmptyRecipeFile(t *testing.T) {
	uc := NewCompileRecipesUseCase(&fakeRecipeLoader{}, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{RecipePath: "empty.csv"})

	var emptyErr *entities.EmptyCatalogError
	require.True(t, errors.As(err, &emptyErr))
}

func TestCompileRecipesUseCase_LoaderError(t *testing.T) {
	uc := NewCompileRecipesUseCase(&fakeRecipeLoader{err: errors.New("disk on fire")}, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.CompileRecipesRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load recipes: disk on fire")
}

func TestPlotProfilesUseCase_Execute(t *testing.T) {
	plots := &fakePlotSetLoader{groups: []entities.PlotGroup{
		{Title: "Warm", Profiles: []string{"y", "choc"}},
		{Profiles: []string{"x"}},
	}}
	uc := NewPlotProfilesUseCase(&fakeRecipeLoader{rows: recipeRows()}, plots, &fakeBuilderFactory{}, testChart, nil)

	report, err := uc.Execute(context.Background(), dto.PlotProfilesRequest{RecipePath: "r.csv", PlotSetPath: "p.csv"})
	require.NoError(t, err)

	require.Len(t, report.Plots, 2)
	assert.Equal(t, "Warm", report.Plots[0].Title)
	assert.Equal(t, []string{"y", "choc"}, curveNames(report.Plots[0]), "group order, not catalog order")
	assert.Equal(t, []string{"x"}, curveNames(report.Plots[1]))
	assert.Equal(t, 3, report.CurveCount())
	assert.InDelta(t, 6.0, report.TimeAxis.Max, 1e-9)
}

func TestPlotProfilesUseCase_UnknownProfile(t *testing.T) {
	plots := &fakePlotSetLoader{groups: []entities.PlotGroup{
		{Profiles: []string{"choc"}},
		{Title: "Dark", Profiles: []string{"choc", "mocha"}},
	}}
	uc := NewPlotProfilesUseCase(&fakeRecipeLoader{rows: recipeRows()}, plots, &fakeBuilderFactory{}, testChart, nil)

	report, err := uc.Execute(context.Background(), dto.PlotProfilesRequest{})
	assert.Nil(t, report)

	var groupErr *apperrors.GroupError
	require.True(t, errors.As(err, &groupErr))
	assert.Equal(t, 2, groupErr.Index)

	var unknown *entities.UnknownProfileError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "mocha", unknown.Name)
}

func TestPlotProfilesUseCase_EmptyPlotSet(t *testing.T) {
	uc := NewPlotProfilesUseCase(&fakeRecipeLoader{rows: recipeRows()}, &fakePlotSetLoader{}, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.PlotProfilesRequest{PlotSetPath: "plots.csv"})

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "defines no plot groups")
}

func TestPlotProfilesUseCase_PlotSetLoadError(t *testing.T) {
	plots := &fakePlotSetLoader{err: errors.New("unsupported plot set apiVersion 2.0.0")}
	uc := NewPlotProfilesUseCase(&fakeRecipeLoader{rows: recipeRows()}, plots, &fakeBuilderFactory{}, testChart, nil)

	_, err := uc.Execute(context.Background(), dto.PlotProfilesRequest{PlotSetPath: "plots.yaml"})

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "apiVersion 2.0.0")
}
