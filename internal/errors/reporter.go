// Package errors defines the five diagnostic kinds the VC pipeline can
// raise (spec §7) and a Rust-style reporter for printing them against
// source text.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"asymptote/internal/ast"
)

// Level is the severity of a diagnostic.
type Level string

const (
	Error Level = "error"
	Note  Level = "note"
)

// Diagnostic is a structured error with enough context to render a
// caret-style message against its source file.
type Diagnostic struct {
	Level    Level
	Kind     Kind
	Message  string
	Position ast.Position
	Length   int
	Notes    []string
	HelpText string
}

// Err wraps a Diagnostic into a regular Go error. The VC pipeline
// returns *Err from fallible operations; callers that only care about
// the Kind can type-assert without pulling in the pretty-printer.
type Err struct {
	Diagnostic
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Position, e.Kind, e.Message)
}

// New builds an *Err of the given kind at pos, formatting Message with
// fmt.Sprintf semantics.
func New(kind Kind, pos ast.Position, format string, args ...any) *Err {
	return &Err{Diagnostic{
		Level:    Error,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Length:   1,
	}}
}

// ParseError reports a syntax error.
func ParseError(pos ast.Position, format string, args ...any) *Err {
	return New(ParseErrorKind, pos, format, args...)
}

// Unsupported reports a construct the pipeline deliberately does not
// model (spec §1 Non-goals, §7).
func Unsupported(pos ast.Position, construct string) *Err {
	e := New(UnsupportedKind, pos, "unsupported construct: %s", construct)
	e.HelpText = "this verifier only models the constructs listed in its specification"
	return e
}

// Domain reports an internal precondition violated by a malformed
// tree, most commonly a call to a function absent from FuncDefs.
func Domain(pos ast.Position, format string, args ...any) *Err {
	return New(DomainErrorKind, pos, format, args...)
}

// SolverUnknown reports an obligation the oracle could not decide.
func SolverUnknown(pos ast.Position, obligation string) *Err {
	return New(SolverUnknownKind, pos, "solver returned unknown for obligation: %s", obligation)
}

// VerificationFailure reports an obligation the oracle proved false.
func VerificationFailure(pos ast.Position, fn, reason string) *Err {
	return New(VerificationFailureKind, pos, "cost claim for %q does not hold: %s", fn, reason)
}

// Reporter formats Diagnostics against the source text they refer to.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter creates a Reporter for a named source file.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders d as a multi-line, colorized diagnostic in the style
// of rustc's error output.
func (r *Reporter) Format(d Diagnostic) string {
	var out strings.Builder

	levelColor := r.levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	msg := d.Message
	if msg == "" {
		msg = description(d.Kind)
	}
	fmt.Fprintf(&out, "%s[%s]: %s\n", levelColor(string(d.Level)), string(d.Kind), msg)

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)
	fmt.Fprintf(&out, "%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column)
	fmt.Fprintf(&out, "%s %s\n", indent, dim("│"))

	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		fmt.Fprintf(&out, "%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1])
		marker := strings.Repeat(" ", max(0, d.Position.Column-1)) + color.RedString(strings.Repeat("^", max(1, d.Length)))
		fmt.Fprintf(&out, "%s %s %s\n", indent, dim("│"), marker)
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, dim("│"), color.BlueString("note:"), note)
	}
	if d.HelpText != "" {
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, dim("│"), color.GreenString("help:"), d.HelpText)
	}

	out.WriteString("\n")
	return out.String()
}

func (r *Reporter) levelColor(level Level) func(...any) string {
	if level == Note {
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	}
	return color.New(color.FgRed, color.Bold).SprintFunc()
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
