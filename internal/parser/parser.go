// Package parser turns source text into the internal/ast tree the VC
// pipeline consumes. Parsing itself is an external collaborator per
// spec §1 ("out of scope, specified only by interface"); this package
// gives that interface a concrete, participle-backed implementation
// so the CLI's `parse`/`recurrences`/`analyze` subcommands have
// something to run against.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"

	"asymptote/internal/ast"
	"asymptote/internal/grammar"
)

var build = sync()

func sync() *participle.Parser[grammar.Program] {
	p, err := participle.Build[grammar.Program](
		participle.Lexer(grammar.Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}
	return p
}

// ParseFile reads and parses a source file.
func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read %s", path)
	}
	return ParseSource(path, string(source))
}

// ParseSource parses source text attributed to sourceName for
// diagnostics. On failure it prints a caret-style diagnostic (mirrors
// kanso's cmd/kanso-cli reportParseError) and returns the participle
// error wrapped by pkg/errors with the prefix "parse error".
func ParseSource(sourceName, source string) (*ast.Program, error) {
	tree, err := build.ParseString(sourceName, source)
	if err != nil {
		reportParseError(source, err)
		return nil, pkgerrors.Wrap(err, "parse error")
	}

	return convertProgram(tree)
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	col := pos.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"

	color.Red("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
