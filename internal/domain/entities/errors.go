package entities

import (
	"fmt"
	"strings"
)

// ParseError indicates a token that should be numeric is not, or that a row
// ended in the middle of a ramp step.
type ParseError struct {
	Cause   error
	Profile string // empty when the name token itself is missing
	Field   string // e.g. "hold duration", "ramp rate", "target temperature"
	Token   string
	Reason  string
	Line    int // source record, 0 when unknown
	Index   int // token index within the row
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Profile != "" {
		fmt.Fprintf(&b, " in profile %q", e.Profile)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	fmt.Fprintf(&b, ": token %d (%s): %s", e.Index, e.Field, e.Reason)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// DivisionError indicates a ramp step with a zero rate, which leaves the
// ramp duration undefined.
type DivisionError struct {
	Profile string
	Line    int
	Index   int // token index of the rate
}

func (e *DivisionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("division error in profile %q (line %d): ramp rate at token %d is zero", e.Profile, e.Line, e.Index)
	}
	return fmt.Sprintf("division error in profile %q: ramp rate at token %d is zero", e.Profile, e.Index)
}

// UnknownProfileError indicates a lookup of a name the catalog does not hold.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile: %q", e.Name)
}

// EmptyCatalogError indicates a statistic was requested over no profiles.
type EmptyCatalogError struct {
	Statistic string
}

func (e *EmptyCatalogError) Error() string {
	return fmt.Sprintf("catalog is empty: %s is undefined", e.Statistic)
}

// DuplicateNameError indicates two rows declare the same profile name.
type DuplicateNameError struct {
	Name      string
	FirstLine int
	Line      int
}

func (e *DuplicateNameError) Error() string {
	if e.FirstLine > 0 && e.Line > 0 {
		return fmt.Sprintf("duplicate profile name %q: line %d redeclares line %d", e.Name, e.Line, e.FirstLine)
	}
	return fmt.Sprintf("duplicate profile name %q", e.Name)
}
