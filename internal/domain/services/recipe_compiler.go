package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/domain/values"
)

// RecipeCompiler transforms one instruction row into a profile.
// This is a domain service with no state; a single compiler is safe to
// share between goroutines.
//
// Row grammar:
//
//	name, initial, {hold, [rate, target]}*
//
// A row may end before a hold or right after one. Ending between a rate
// and its target is a ParseError.
type RecipeCompiler struct{}

// NewRecipeCompiler creates a new recipe compiler service.
func NewRecipeCompiler() *RecipeCompiler {
	return &RecipeCompiler{}
}

// Compile walks the row once and returns the resulting profile.
// Any error invalidates the whole row.
func (c *RecipeCompiler) Compile(row entities.InstructionRow) (*entities.Profile, error) {
	if len(row.Tokens) == 0 {
		return nil, &entities.ParseError{Line: row.Line, Field: "name", Reason: "row is empty"}
	}

	name, err := values.NewProfileName(row.Tokens[0])
	if err != nil {
		return nil, &entities.ParseError{Line: row.Line, Field: "name", Token: row.Tokens[0], Reason: "name is blank"}
	}

	cur := &rowCursor{tokens: row.Tokens, pos: 1, profile: name.String(), line: row.Line}

	if cur.exhausted() {
		return nil, cur.missing("initial temperature")
	}
	currentTemp, err := cur.number("initial temperature")
	if err != nil {
		return nil, err
	}
	currentTime := 0.0

	waypoints := []values.Waypoint{values.NewWaypoint(currentTime, currentTemp)}

	var (
		scaledRate float64
		rateIndex  int
	)

	state := values.AwaitingHold
	for state != values.Done {
		if cur.exhausted() {
			if !state.CanTerminate() {
				return nil, cur.missing("target temperature")
			}
			state = values.Done
			continue
		}

		switch state {
		case values.AwaitingHold:
			hold, err := cur.number("hold duration")
			if err != nil {
				return nil, err
			}
			currentTime += hold
			waypoints = append(waypoints, values.NewWaypoint(currentTime, currentTemp))
			state = values.AwaitingRampRate

		case values.AwaitingRampRate:
			rateIndex = cur.pos
			rate, err := cur.number("ramp rate")
			if err != nil {
				return nil, err
			}
			scaledRate = rate * values.MinutesPerHour
			state = values.AwaitingTarget

		case values.AwaitingTarget:
			target, err := cur.number("target temperature")
			if err != nil {
				return nil, err
			}
			if scaledRate == 0 {
				return nil, &entities.DivisionError{Profile: cur.profile, Line: cur.line, Index: rateIndex}
			}
			currentTime += (target - currentTemp) / scaledRate
			currentTemp = target
			waypoints = append(waypoints, values.NewWaypoint(currentTime, currentTemp))
			state = values.AwaitingHold
		}
	}

	return entities.NewProfile(name, row.Line, waypoints)
}

// rowCursor is an explicit index over a row's tokens.
type rowCursor struct {
	profile string
	tokens  []string
	pos     int
	line    int
}

func (r *rowCursor) exhausted() bool {
	return r.pos >= len(r.tokens)
}

// number parses the token under the cursor and advances past it.
func (r *rowCursor) number(field string) (float64, error) {
	token := r.tokens[r.pos]
	index := r.pos
	r.pos++

	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, &entities.ParseError{
			Profile: r.profile,
			Line:    r.line,
			Index:   index,
			Field:   field,
			Token:   token,
			Reason:  fmt.Sprintf("%q is not a number", token),
			Cause:   err,
		}
	}
	return v, nil
}

func (r *rowCursor) missing(field string) error {
	return &entities.ParseError{
		Profile: r.profile,
		Line:    r.line,
		Index:   r.pos,
		Field:   field,
		Reason:  "row ends before " + field,
	}
}
