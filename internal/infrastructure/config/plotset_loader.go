package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SupportedPlotSetVersions is the apiVersion range this build reads.
const SupportedPlotSetVersions = ">= 1.0.0, < 2.0.0"

//go:embed plotset_schema.json
var plotSetSchema []byte

// PlotSetDocument is the YAML form of a plot set.
type PlotSetDocument struct {
	APIVersion string               `yaml:"apiVersion"`
	Plots      []entities.PlotGroup `yaml:"plots"`
}

// PlotSetLoader reads plot groups from CSV (one group per record) or from a
// versioned YAML document.
type PlotSetLoader struct{}

// NewPlotSetLoader creates a new plot-set loader.
func NewPlotSetLoader() *PlotSetLoader {
	return &PlotSetLoader{}
}

// LoadPlotSet loads plot groups, choosing the format by file extension.
func (l *PlotSetLoader) LoadPlotSet(path string) ([]entities.PlotGroup, error) {
	file, err := openInDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plot set: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return l.LoadYAMLFromReader(file)
	default:
		return l.LoadCSVFromReader(file)
	}
}

// LoadCSVFromReader reads one plot group per CSV record. Blank cells are
// ignored and records without names are skipped.
func (l *PlotSetLoader) LoadCSVFromReader(r io.Reader) ([]entities.PlotGroup, error) {
	reader := newCSVReader(r)

	var groups []entities.PlotGroup
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read plot set CSV: %w", err)
		}

		var names []string
		for _, cell := range record {
			if name := strings.TrimSpace(cell); name != "" {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			continue
		}
		groups = append(groups, entities.PlotGroup{Profiles: names})
	}

	return groups, nil
}

// LoadYAMLFromReader reads a plot-set document. The document is checked
// against the embedded JSON schema and its apiVersion against
// SupportedPlotSetVersions before it is decoded.
func (l *PlotSetLoader) LoadYAMLFromReader(r io.Reader) ([]entities.PlotGroup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read plot set: %w", err)
	}

	if err := validatePlotSetSchema(data); err != nil {
		return nil, err
	}

	var doc PlotSetDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode plot set YAML: %w", err)
	}

	if err := checkPlotSetVersion(doc.APIVersion); err != nil {
		return nil, err
	}

	for i := range doc.Plots {
		for j, name := range doc.Plots[i].Profiles {
			doc.Plots[i].Profiles[j] = strings.TrimSpace(name)
		}
	}

	return doc.Plots, nil
}

func validatePlotSetSchema(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode plot set YAML: %w", err)
	}

	var instance interface{}
	if err := json.Unmarshal(jsonData, &instance); err != nil {
		return fmt.Errorf("failed to decode plot set YAML: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("plotset.json", bytes.NewReader(plotSetSchema)); err != nil {
		return fmt.Errorf("failed to add plot set schema: %w", err)
	}
	schema, err := compiler.Compile("plotset.json")
	if err != nil {
		return fmt.Errorf("failed to compile plot set schema: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("plot set validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError flattens a JSON Schema validation error tree.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("plot set validation failed")
	}
	return fmt.Errorf("plot set validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}

func checkPlotSetVersion(apiVersion string) error {
	version, err := semver.NewVersion(apiVersion)
	if err != nil {
		return fmt.Errorf("invalid plot set apiVersion %q: %w", apiVersion, err)
	}

	constraint, err := semver.NewConstraint(SupportedPlotSetVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint: %w", err)
	}

	if !constraint.Check(version) {
		return fmt.Errorf("unsupported plot set apiVersion %s (supported: %s)", version, SupportedPlotSetVersions)
	}
	return nil
}
