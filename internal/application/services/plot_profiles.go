package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	apperrors "github.com/cubeworks/rampcurve/internal/application/errors"
	"github.com/cubeworks/rampcurve/internal/application/ports"
)

// PlotProfilesUseCase compiles a recipe file and resolves a plot set
// against it, one plot per group.
type PlotProfilesUseCase struct {
	plotSetLoader ports.PlotSetLoader
	stage         catalogStage
}

// NewPlotProfilesUseCase creates a new plot profiles use case.
func NewPlotProfilesUseCase(
	recipeLoader ports.RecipeLoader,
	plotSetLoader ports.PlotSetLoader,
	builderFactory ports.CatalogBuilderFactory,
	chart ports.ChartSettings,
	logger *slog.Logger,
) *PlotProfilesUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlotProfilesUseCase{
		plotSetLoader: plotSetLoader,
		stage: catalogStage{
			recipeLoader:   recipeLoader,
			builderFactory: builderFactory,
			chart:          chart,
			logger:         logger,
		},
	}
}

// Execute runs the plot workflow. The first group naming an unknown profile
// fails the whole request; a partial plot set would silently drop curves.
func (uc *PlotProfilesUseCase) Execute(ctx context.Context, req dto.PlotProfilesRequest) (*dto.PlotReport, error) {
	catalog, maxTime, err := uc.stage.build(ctx, req.RecipePath, req.Execution)
	if err != nil {
		return nil, err
	}

	uc.stage.logger.Info("loading plot set", "path", req.PlotSetPath)

	groups, err := uc.plotSetLoader.LoadPlotSet(req.PlotSetPath)
	if err != nil {
		return nil, apperrors.WrapValidationError("plot set", fmt.Sprintf("cannot load %s", req.PlotSetPath), err)
	}
	if len(groups) == 0 {
		return nil, apperrors.NewValidationError("plot set", fmt.Sprintf("%s defines no plot groups", req.PlotSetPath))
	}

	report := uc.stage.newReport(maxTime, req.Metadata)
	report.Plots = make([]dto.Plot, 0, len(groups))

	for i, group := range groups {
		entries, err := catalog.ResolveGroup(group.Profiles)
		if err != nil {
			return nil, &apperrors.GroupError{Index: i + 1, Title: group.Title, Cause: err}
		}
		report.Plots = append(report.Plots, newPlot(group.Title, entries))
	}

	uc.stage.logger.Info("plot set resolved", "plots", len(report.Plots), "curves", report.CurveCount())

	return report, nil
}
