package liberrors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrGrammarMismatch(t *testing.T) {
	for _, ca := range []struct {
		name string
		err  ErrGrammarMismatch
		str  string
	}{
		{
			"no expectations",
			ErrGrammarMismatch{Line: 1, Column: 1, Text: ""},
			`invalid syntax at line 1, column 1 ("")`,
		},
		{
			"single",
			ErrGrammarMismatch{Line: 3, Column: 3, Text: "t=x 0", Expected: []string{"number"}},
			`invalid syntax at line 3, column 3: expected number ("t=x 0")`,
		},
		{
			"multiple",
			ErrGrammarMismatch{Line: 4, Column: 1, Text: "x=1", Expected: []string{`"t="`, "end of input"}},
			`invalid syntax at line 4, column 1: expected one of "t=", end of input ("x=1")`,
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			require.EqualError(t, ca.err, ca.str)
		})
	}
}

func TestErrStructuralInvariant(t *testing.T) {
	err := ErrStructuralInvariant{Node: "application_line", Reason: "no attribute found"}
	require.EqualError(t, err, "invalid application_line: no attribute found")
}
