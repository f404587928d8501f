package services

import (
	"fmt"

	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ProfileEnv defines the variables available during filter expression evaluation.
type ProfileEnv struct {
	Name      string  `expr:"name"`
	Initial   float64 `expr:"initial"`
	Final     float64 `expr:"final"`
	Peak      float64 `expr:"peak"`
	Duration  float64 `expr:"duration"`
	Waypoints int     `expr:"waypoints"`
}

// NewProfileEnv builds the evaluation environment for a profile.
func NewProfileEnv(p *entities.Profile) ProfileEnv {
	return ProfileEnv{
		Name:      p.Name(),
		Initial:   p.Initial().Temperature,
		Final:     p.Final().Temperature,
		Peak:      p.PeakTemperature(),
		Duration:  p.MaxTime(),
		Waypoints: p.Len(),
	}
}

// CompileFilterExpression compiles a boolean filter expression against ProfileEnv.
func CompileFilterExpression(expression string) (*vm.Program, error) {
	return expr.Compile(expression, expr.Env(ProfileEnv{}), expr.AsBool())
}

// ProfileFilter selects catalog entries by name and by expression.
type ProfileFilter struct {
	includeNames map[string]bool
	excludeNames map[string]bool

	filterProgram *vm.Program
}

// NewProfileFilter initializes a new empty filter.
func NewProfileFilter() *ProfileFilter {
	return &ProfileFilter{
		includeNames: make(map[string]bool),
		excludeNames: make(map[string]bool),
	}
}

// WithNames restricts the selection to these profile names.
func (f *ProfileFilter) WithNames(names []string) *ProfileFilter {
	f.includeNames = toSet(names)
	return f
}

// WithExcludedNames drops these profile names.
func (f *ProfileFilter) WithExcludedNames(names []string) *ProfileFilter {
	f.excludeNames = toSet(names)
	return f
}

// WithFilterProgram sets a compiled expression filter.
func (f *ProfileFilter) WithFilterProgram(program *vm.Program) *ProfileFilter {
	f.filterProgram = program
	return f
}

// IsEmpty reports whether the filter selects everything.
func (f *ProfileFilter) IsEmpty() bool {
	return len(f.includeNames) == 0 && len(f.excludeNames) == 0 && f.filterProgram == nil
}

// Match reports whether the profile passes the filter. Exclusions win
// over inclusions.
func (f *ProfileFilter) Match(p *entities.Profile) (bool, error) {
	if f.excludeNames[p.Name()] {
		return false, nil
	}
	if len(f.includeNames) > 0 && !f.includeNames[p.Name()] {
		return false, nil
	}
	if f.filterProgram == nil {
		return true, nil
	}

	output, err := expr.Run(f.filterProgram, NewProfileEnv(p))
	if err != nil {
		return false, fmt.Errorf("filter expression error on profile %q: %w", p.Name(), err)
	}
	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return boolean: %v", output)
	}
	return result, nil
}

// Apply returns a catalog holding the matching profiles in insertion order.
func (f *ProfileFilter) Apply(catalog *entities.Catalog) (*entities.Catalog, error) {
	if f.IsEmpty() {
		return catalog, nil
	}

	var keep []string
	for _, p := range catalog.Profiles() {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			keep = append(keep, p.Name())
		}
	}
	return catalog.Subset(keep)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
