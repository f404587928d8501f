// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"log/slog"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/cubeworks/rampcurve/internal/application/ports"
	"github.com/cubeworks/rampcurve/internal/domain/services"
	"github.com/cubeworks/rampcurve/internal/infrastructure/config"
	"github.com/cubeworks/rampcurve/internal/infrastructure/engine"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.RecipeLoader          = (*config.RecipeLoader)(nil)
	_ ports.PlotSetLoader         = (*config.PlotSetLoader)(nil)
	_ ports.CatalogBuilder        = (*engine.ParallelBuilder)(nil)
	_ ports.CatalogBuilderFactory = (*CatalogBuilderFactoryAdapter)(nil)
)

// CatalogBuilderFactoryAdapter creates engine builders from request options.
// Every builder shares one stateless recipe compiler.
type CatalogBuilderFactoryAdapter struct {
	compiler *services.RecipeCompiler
	logger   *slog.Logger
}

// NewCatalogBuilderFactoryAdapter creates a new builder factory adapter.
func NewCatalogBuilderFactoryAdapter(logger *slog.Logger) *CatalogBuilderFactoryAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogBuilderFactoryAdapter{
		compiler: services.NewRecipeCompiler(),
		logger:   logger,
	}
}

// CreateBuilder returns a builder honoring the parallelism options.
// MaxConcurrentRows of 0 keeps the engine default.
func (f *CatalogBuilderFactoryAdapter) CreateBuilder(opts dto.ExecutionOptions) ports.CatalogBuilder {
	cfg := engine.DefaultBuildConfig()
	cfg.Parallel = opts.Parallel
	if opts.MaxConcurrentRows > 0 {
		cfg.MaxConcurrentRows = opts.MaxConcurrentRows
	}
	return engine.NewParallelBuilder(f.compiler, cfg, f.logger)
}
