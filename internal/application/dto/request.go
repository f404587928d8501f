// Package dto contains data transfer objects for application layer use cases.
package dto

// CompileRecipesRequest encapsulates all inputs needed to compile a recipe file.
type CompileRecipesRequest struct {
	RecipePath string
	Metadata   RequestMetadata
	Filters    FilterOptions
	Execution  ExecutionOptions
}

// PlotProfilesRequest encapsulates all inputs needed to resolve a plot set.
type PlotProfilesRequest struct {
	RecipePath  string
	PlotSetPath string
	Metadata    RequestMetadata
	Execution   ExecutionOptions
}

// FilterOptions defines filters for profile selection.
type FilterOptions struct {
	FilterExpression string
	IncludeNames     []string
	ExcludeNames     []string
}

// ExecutionOptions controls how recipe rows are compiled.
type ExecutionOptions struct {
	// Parallel enables parallel compilation of rows
	Parallel bool

	// MaxConcurrentRows limits parallel compilation (0 = one per CPU)
	MaxConcurrentRows int
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
