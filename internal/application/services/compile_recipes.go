package services

import (
	"context"
	"log/slog"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	apperrors "github.com/cubeworks/rampcurve/internal/application/errors"
	"github.com/cubeworks/rampcurve/internal/application/ports"
	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/domain/services"
)

// CompileRecipesUseCase compiles a recipe file and reports every selected
// profile on a single plot.
type CompileRecipesUseCase struct {
	stage catalogStage
}

// NewCompileRecipesUseCase creates a new compile recipes use case.
func NewCompileRecipesUseCase(
	recipeLoader ports.RecipeLoader,
	builderFactory ports.CatalogBuilderFactory,
	chart ports.ChartSettings,
	logger *slog.Logger,
) *CompileRecipesUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &CompileRecipesUseCase{
		stage: catalogStage{
			recipeLoader:   recipeLoader,
			builderFactory: builderFactory,
			chart:          chart,
			logger:         logger,
		},
	}
}

// Execute runs the compile workflow. The time axis always spans the whole
// catalog, filtered or not.
func (uc *CompileRecipesUseCase) Execute(ctx context.Context, req dto.CompileRecipesRequest) (*dto.PlotReport, error) {
	filter, err := uc.buildFilter(req.Filters)
	if err != nil {
		return nil, err
	}

	catalog, maxTime, err := uc.stage.build(ctx, req.RecipePath, req.Execution)
	if err != nil {
		return nil, err
	}

	for _, name := range req.Filters.IncludeNames {
		if _, err := catalog.Lookup(name); err != nil {
			return nil, apperrors.WrapValidationError("--profile", "references a profile the recipe file does not define", err)
		}
	}

	selected, err := filter.Apply(catalog)
	if err != nil {
		return nil, apperrors.WrapValidationError("--filter", "evaluation failed", err)
	}

	if selected.Len() < catalog.Len() {
		uc.stage.logger.Info("profiles filtered", "selected", selected.Len(), "total", catalog.Len())
	}

	entries, err := selected.ResolveGroup(selected.Names())
	if err != nil {
		return nil, err
	}

	report := uc.stage.newReport(maxTime, req.Metadata)
	report.Plots = []dto.Plot{newPlot("", entries)}

	return report, nil
}

// buildFilter compiles the --filter expression once, before any work.
func (uc *CompileRecipesUseCase) buildFilter(opts dto.FilterOptions) (*services.ProfileFilter, error) {
	filter := services.NewProfileFilter().
		WithNames(opts.IncludeNames).
		WithExcludedNames(opts.ExcludeNames)

	if opts.FilterExpression != "" {
		program, err := services.CompileFilterExpression(opts.FilterExpression)
		if err != nil {
			return nil, apperrors.WrapValidationError("--filter", "invalid expression (example: peak > 70 && duration < 8)", err)
		}
		filter.WithFilterProgram(program)
	}

	return filter, nil
}

func newPlot(title string, entries []entities.GroupEntry) dto.Plot {
	curves := make([]dto.Curve, 0, len(entries))
	for _, e := range entries {
		curves = append(curves, dto.NewCurve(e))
	}
	return dto.Plot{Title: title, Curves: curves}
}
