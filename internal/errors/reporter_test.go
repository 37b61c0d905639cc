package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asymptote/internal/ast"
)

func TestReporterFormat(t *testing.T) {
	source := "let f : int -> int =\n  fun (x : int) -> x + bogus;\n"
	reporter := NewReporter("sample.tc", source)

	pos := ast.Position{Filename: "sample.tc", Line: 2, Column: 23}
	d := Unsupported(pos, "free variable 'bogus'").Diagnostic
	formatted := reporter.Format(d)

	assert.Contains(t, formatted, "error["+string(UnsupportedKind)+"]")
	assert.Contains(t, formatted, "sample.tc:2:23")
	assert.Contains(t, formatted, "free variable 'bogus'")
	assert.Contains(t, formatted, "help:")
}

func TestKindConstructors(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	assert.Equal(t, ParseErrorKind, ParseError(pos, "unexpected token").Kind)
	assert.Equal(t, DomainErrorKind, Domain(pos, "function %q not in FuncDefs", "f").Kind)
	assert.Equal(t, SolverUnknownKind, SolverUnknown(pos, "path#0").Kind)
	assert.Equal(t, VerificationFailureKind, VerificationFailure(pos, "f", "cost exceeds bound on path#1").Kind)
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(ParseErrorKind))
	assert.True(t, IsFatal(UnsupportedKind))
	assert.True(t, IsFatal(DomainErrorKind))
	assert.False(t, IsFatal(SolverUnknownKind))
	assert.False(t, IsFatal(VerificationFailureKind))
}

func TestErrString(t *testing.T) {
	pos := ast.Position{Filename: "a.tc", Line: 3, Column: 4}
	err := Domain(pos, "missing recurrence for %q", "g")
	assert.Contains(t, err.Error(), "a.tc:3:4")
	assert.Contains(t, err.Error(), "domain error")
}
