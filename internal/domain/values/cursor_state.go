package values

// CursorState tags where the recipe compiler sits inside a hold/ramp cycle.
type CursorState int

const (
	// AwaitingHold expects a hold duration (or the end of the row).
	AwaitingHold CursorState = iota
	// AwaitingRampRate expects a ramp rate (or the end of the row).
	AwaitingRampRate
	// AwaitingTarget expects the target temperature of a ramp.
	AwaitingTarget
	// Done means the row ended at a legal point.
	Done
)

// String returns the state name.
func (s CursorState) String() string {
	switch s {
	case AwaitingHold:
		return "awaiting hold"
	case AwaitingRampRate:
		return "awaiting ramp rate"
	case AwaitingTarget:
		return "awaiting target"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// CanTerminate reports whether running out of tokens in this state ends
// the recipe successfully.
func (s CursorState) CanTerminate() bool {
	return s == AwaitingHold || s == AwaitingRampRate || s == Done
}
