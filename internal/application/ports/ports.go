// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/cubeworks/rampcurve/internal/domain/entities"
)

// RecipeLoader loads instruction rows from storage.
type RecipeLoader interface {
	LoadRecipes(path string) ([]entities.InstructionRow, error)
}

// PlotSetLoader loads plot groups from storage.
type PlotSetLoader interface {
	LoadPlotSet(path string) ([]entities.PlotGroup, error)
}

// CatalogBuilder compiles instruction rows into a catalog.
type CatalogBuilder interface {
	Build(ctx context.Context, rows []entities.InstructionRow) (*entities.Catalog, error)
}

// CatalogBuilderFactory creates builders for the requested execution options.
type CatalogBuilderFactory interface {
	CreateBuilder(opts dto.ExecutionOptions) CatalogBuilder
}

// ChartSettings supplies the labels attached to every report.
type ChartSettings struct {
	Title            string
	TimeLabel        string
	TemperatureLabel string
}

// OutputFormatter formats plot reports.
type OutputFormatter interface {
	Format(report *dto.PlotReport) error
}

// FormatterOptions configures formatter creation.
type FormatterOptions struct {
	Indent  bool
	NoColor bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
