package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/domain/services"
	"golang.org/x/sync/errgroup"
)

// rowResult is the outcome of compiling one row, stored at the row's index.
type rowResult struct {
	profile *entities.Profile
	err     error
}

// ParallelBuilder compiles rows on a bounded worker pool and assembles the
// catalog on a single writer once every worker is done.
//
// Rows are dispatched in order and every dispatched row is compiled, so the
// reported error is always the one with the lowest row index, exactly as the
// sequential builder reports it.
type ParallelBuilder struct {
	compiler *services.RecipeCompiler
	logger   *slog.Logger
	config   BuildConfig
}

// NewParallelBuilder creates a builder. A nil logger uses slog.Default().
func NewParallelBuilder(compiler *services.RecipeCompiler, config BuildConfig, logger *slog.Logger) *ParallelBuilder {
	if compiler == nil {
		compiler = services.NewRecipeCompiler()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ParallelBuilder{compiler: compiler, config: config, logger: logger}
}

// Build compiles rows into a catalog. With parallelism disabled, or a single
// row, it falls back to the sequential CatalogBuilder.
func (b *ParallelBuilder) Build(ctx context.Context, rows []entities.InstructionRow) (*entities.Catalog, error) {
	workers := b.config.MaxConcurrentRows
	if workers > len(rows) {
		workers = len(rows)
	}
	if !b.config.Parallel || workers <= 1 {
		b.logger.Debug("compiling rows sequentially", "rows", len(rows))
		return services.NewCatalogBuilder(b.compiler).Build(rows)
	}

	b.logger.Debug("compiling rows in parallel", "rows", len(rows), "workers", workers)

	results := make([]rowResult, len(rows))
	workChan := make(chan int, workers)

	g, gCtx := errgroup.WithContext(ctx)

	// Feeder: stops dispatching once any row fails or ctx is cancelled.
	failed := make(chan struct{})
	g.Go(func() error {
		defer close(workChan)
		for i := range rows {
			select {
			case workChan <- i:
			case <-failed:
				return nil
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		return nil
	})

	errs := make(chan struct{}, len(rows))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range workChan {
				p, err := b.compiler.Compile(rows[i])
				results[i] = rowResult{profile: p, err: err}
				if err != nil {
					errs <- struct{}{}
				}
			}
			return nil
		})
	}

	// Watcher: turns the first failure into a stop signal for the feeder.
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		select {
		case <-errs:
			close(failed)
		case <-gCtx.Done():
		}
	}()

	// Wait cancels gCtx, which also releases the watcher.
	waitErr := g.Wait()
	<-watchDone

	if waitErr != nil {
		return nil, fmt.Errorf("compilation cancelled: %w", waitErr)
	}

	// Rows past the first failure may be undispatched; the scan returns
	// before reaching them.
	assembler := entities.NewCatalogAssembler(len(rows))
	for i, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, r.err)
		}
		if err := assembler.Add(r.profile); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return assembler.Catalog(), nil
}
