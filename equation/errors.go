package equation

import "fmt"

// Role identifies which lookup table a reference belongs to.
type Role string

const (
	RoleCompound    Role = "compound"
	RoleCompartment Role = "compartment"
)

// SyntaxError reports input that does not conform to the equation
// grammar. The whole parse fails; no partial equation is produced.
type SyntaxError struct {
	Pos  int    // byte offset of the offending token
	Text string // offending token text, empty at end of input
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("equation: syntax error at offset %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("equation: syntax error at offset %d near %q: %s", e.Pos, e.Text, e.Msg)
}

// ReferenceError reports a participant token that is missing from the
// caller-supplied lookup table. One miss invalidates the whole
// equation's resolution.
type ReferenceError struct {
	Token string
	Role  Role
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("equation: unknown %s reference %q", e.Role, e.Token)
}
