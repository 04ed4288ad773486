// Package liberrors contains errors returned by the library.
package liberrors

import (
	"fmt"
	"strings"
)

// ErrGrammarMismatch is returned when the input does not conform to the SDP grammar.
type ErrGrammarMismatch struct {
	// 1-based line of the farthest point reached by the grammar.
	Line int

	// 1-based column inside Line.
	Column int

	// content of the offending line, without terminator.
	Text string

	// tokens that would have been accepted at Line:Column.
	Expected []string
}

// Error implements the error interface.
func (e ErrGrammarMismatch) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid syntax at line %d, column %d", e.Line, e.Column)

	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ": expected %s", e.Expected[0])
	default:
		fmt.Fprintf(&b, ": expected one of %s", strings.Join(e.Expected, ", "))
	}

	fmt.Fprintf(&b, " (%q)", e.Text)
	return b.String()
}

// ErrStructuralInvariant is returned when a parse result cannot be converted
// into the object model.
type ErrStructuralInvariant struct {
	Node   string
	Reason string
}

// Error implements the error interface.
func (e ErrStructuralInvariant) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Node, e.Reason)
}
