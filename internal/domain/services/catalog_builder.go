package services

import (
	"fmt"

	"github.com/cubeworks/rampcurve/internal/domain/entities"
)

// CatalogBuilder compiles instruction rows into a catalog.
// Rows compile in order and the first error stops the batch, because
// skipping a row would leave plot groups pointing at a missing profile.
type CatalogBuilder struct {
	compiler *RecipeCompiler
}

// NewCatalogBuilder creates a catalog builder around a recipe compiler.
// A nil compiler gets a fresh one.
func NewCatalogBuilder(compiler *RecipeCompiler) *CatalogBuilder {
	if compiler == nil {
		compiler = NewRecipeCompiler()
	}
	return &CatalogBuilder{compiler: compiler}
}

// Build compiles every row and inserts it under its name.
// A repeated name is a DuplicateNameError at the repeating row, never an
// overwrite.
func (b *CatalogBuilder) Build(rows []entities.InstructionRow) (*entities.Catalog, error) {
	assembler := entities.NewCatalogAssembler(len(rows))
	for i, row := range rows {
		p, err := b.compiler.Compile(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := assembler.Add(p); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return assembler.Catalog(), nil
}
