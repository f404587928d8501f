// Package config provides infrastructure for loading recipe and plot-set files.
// This package handles CSV and YAML parsing and file I/O.
package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cubeworks/rampcurve/internal/domain/entities"
)

// RecipeLoader reads instruction rows from a recipe CSV file.
//
// Each record is one row: name, initial temperature, then hold/rate/target
// cells. Records may have different lengths. Trailing empty cells, as left
// by spreadsheet exports, are dropped; records that are empty after that
// are skipped. Lines starting with '#' are comments.
type RecipeLoader struct {
	skipHeader bool
}

// NewRecipeLoader creates a recipe loader. With skipHeader the first record
// is treated as column titles and ignored.
func NewRecipeLoader(skipHeader bool) *RecipeLoader {
	return &RecipeLoader{skipHeader: skipHeader}
}

// LoadRecipes loads instruction rows from a CSV file.
func (l *RecipeLoader) LoadRecipes(path string) ([]entities.InstructionRow, error) {
	file, err := openInDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadRecipesFromReader(file)
}

// LoadRecipesFromReader loads instruction rows from an io.Reader.
func (l *RecipeLoader) LoadRecipesFromReader(r io.Reader) ([]entities.InstructionRow, error) {
	reader := newCSVReader(r)

	var rows []entities.InstructionRow
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read recipe CSV: %w", err)
		}

		if first {
			first = false
			if l.skipHeader {
				continue
			}
		}

		tokens := trimTrailingEmpty(record)
		if len(tokens) == 0 {
			continue
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, entities.NewInstructionRow(line, tokens...))
	}

	return rows, nil
}

// newCSVReader accepts ragged records. There is no comment character: every
// record is data, so a name starting with '#' still reaches the compiler.
func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader
}

// trimTrailingEmpty drops blank cells at the end of a record. Blank cells
// in the middle are kept so the compiler can reject them.
func trimTrailingEmpty(record []string) []string {
	end := len(record)
	for end > 0 && strings.TrimSpace(record[end-1]) == "" {
		end--
	}
	return record[:end]
}

// openInDir opens path through os.OpenRoot so the read cannot escape the
// file's directory.
func openInDir(path string) (*os.File, error) {
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	return root.Open(filepath.Base(path))
}
