package entities

// InstructionRow is one raw recipe record: a name token, an initial
// temperature, then repeated {hold, [rate, target]} tokens.
type InstructionRow struct {
	Tokens []string
	Line   int // source record, 0 when unknown
}

// NewInstructionRow creates a row from tokens.
func NewInstructionRow(line int, tokens ...string) InstructionRow {
	return InstructionRow{Tokens: tokens, Line: line}
}

// Name returns the first token, or "" for an empty row.
func (r InstructionRow) Name() string {
	if len(r.Tokens) == 0 {
		return ""
	}
	return r.Tokens[0]
}
