// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	apperrors "github.com/cubeworks/rampcurve/internal/application/errors"
	"github.com/cubeworks/rampcurve/internal/application/ports"
	"github.com/cubeworks/rampcurve/internal/application/services"
	"github.com/cubeworks/rampcurve/internal/infrastructure/adapters"
	"github.com/cubeworks/rampcurve/internal/infrastructure/config"
	"github.com/cubeworks/rampcurve/internal/infrastructure/output"
	"github.com/cubeworks/rampcurve/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	recipeLoader          ports.RecipeLoader
	plotSetLoader         ports.PlotSetLoader
	builderFactory        ports.CatalogBuilderFactory
	formatterFactory      ports.OutputFormatterFactory
	compileRecipesUseCase *services.CompileRecipesUseCase
	plotProfilesUseCase   *services.PlotProfilesUseCase
	systemCfg             *system.Config
	logger                *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string
	// SkipHeader overrides recipes.skip_header from the config file when set.
	SkipHeader *bool
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	// Load system config. A missing file yields defaults; an invalid one is fatal.
	systemCfg, err := system.NewConfigLoader().Load(opts.SystemConfigPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system config", "failed to load "+opts.SystemConfigPath, err)
	}

	skipHeader := systemCfg.Recipes.SkipHeader
	if opts.SkipHeader != nil {
		skipHeader = *opts.SkipHeader
	}

	// Initialize adapters
	recipeLoader := config.NewRecipeLoader(skipHeader)
	plotSetLoader := config.NewPlotSetLoader()
	builderFactory := adapters.NewCatalogBuilderFactoryAdapter(opts.Logger)
	formatterFactory := output.NewFormatterFactory()

	chart := ports.ChartSettings{
		Title:            systemCfg.Chart.Title,
		TimeLabel:        systemCfg.Chart.TimeLabel,
		TemperatureLabel: systemCfg.Chart.TemperatureLabel,
	}

	// Wire up use cases
	compileRecipesUseCase := services.NewCompileRecipesUseCase(
		recipeLoader,
		builderFactory,
		chart,
		opts.Logger,
	)
	plotProfilesUseCase := services.NewPlotProfilesUseCase(
		recipeLoader,
		plotSetLoader,
		builderFactory,
		chart,
		opts.Logger,
	)

	return &Container{
		recipeLoader:          recipeLoader,
		plotSetLoader:         plotSetLoader,
		builderFactory:        builderFactory,
		formatterFactory:      formatterFactory,
		compileRecipesUseCase: compileRecipesUseCase,
		plotProfilesUseCase:   plotProfilesUseCase,
		systemCfg:             systemCfg,
		logger:                opts.Logger,
	}, nil
}

// CompileRecipesUseCase returns the compile recipes use case.
func (c *Container) CompileRecipesUseCase() *services.CompileRecipesUseCase {
	return c.compileRecipesUseCase
}

// PlotProfilesUseCase returns the plot profiles use case.
func (c *Container) PlotProfilesUseCase() *services.PlotProfilesUseCase {
	return c.plotProfilesUseCase
}

// RecipeLoader returns the recipe loader port.
func (c *Container) RecipeLoader() ports.RecipeLoader {
	return c.recipeLoader
}

// PlotSetLoader returns the plot set loader port.
func (c *Container) PlotSetLoader() ports.PlotSetLoader {
	return c.plotSetLoader
}

// BuilderFactory returns the catalog builder factory port.
func (c *Container) BuilderFactory() ports.CatalogBuilderFactory {
	return c.builderFactory
}

// FormatterFactory returns the output formatter factory port.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
