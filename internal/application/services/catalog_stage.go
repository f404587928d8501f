// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/cubeworks/rampcurve/internal/application/ports"
	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/domain/values"
)

// catalogStage loads a recipe file and compiles it into a catalog. Both use
// cases start with it.
type catalogStage struct {
	recipeLoader   ports.RecipeLoader
	builderFactory ports.CatalogBuilderFactory
	chart          ports.ChartSettings
	logger         *slog.Logger
}

// build returns the catalog and the time axis bound shared by every plot.
func (s *catalogStage) build(ctx context.Context, path string, opts dto.ExecutionOptions) (*entities.Catalog, float64, error) {
	s.logger.Info("loading recipes", "path", path)

	rows, err := s.recipeLoader.LoadRecipes(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load recipes: %w", err)
	}

	s.logger.Debug("recipes loaded", "rows", len(rows))

	catalog, err := s.builderFactory.CreateBuilder(opts).Build(ctx, rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to compile recipes: %w", err)
	}

	maxTime, err := catalog.MaxTime()
	if err != nil {
		return nil, 0, fmt.Errorf("no recipes in %s: %w", path, err)
	}

	s.logger.Info("recipes compiled", "profiles", catalog.Len(), "max_time", maxTime)

	return catalog, maxTime, nil
}

// newReport starts a report carrying the chart labels and the time axis.
func (s *catalogStage) newReport(maxTime float64, meta dto.RequestMetadata) *dto.PlotReport {
	return &dto.PlotReport{
		BuildID:          values.NewBuildID(),
		RequestID:        meta.RequestID,
		GeneratedAt:      time.Now().UTC(),
		Title:            s.chart.Title,
		TemperatureLabel: s.chart.TemperatureLabel,
		TimeAxis: dto.TimeAxis{
			Label: s.chart.TimeLabel,
			Min:   0,
			Max:   maxTime,
		},
	}
}
