package ast

import "strings"

// String renders a parsed program one definition per line, each
// terminated by ";".
func (p *Program) String() string {
	lines := make([]string, 0, len(p.Defs))
	for _, d := range p.Defs {
		lines = append(lines, d.String()+";")
	}
	return strings.Join(lines, "\n")
}
