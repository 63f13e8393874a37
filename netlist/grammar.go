// SPDX-License-Identifier: MIT

package netlist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// netlistLexer tokenizes "0 -- 1, 2R, 5V;" style branch lines.
var netlistLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Link", Pattern: `--`},
	{Name: "Number", Pattern: `[-+]?(\d*\.)?\d+([eE][-+]?\d+)?`},
	{Name: "Unit", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[,;]`},
})

type fileExpr struct {
	Branches []*branchExpr `parser:"@@*"`
}

// branchExpr is one line: From -- To, resistance [R] [, voltage [V]] ;
type branchExpr struct {
	Pos lexer.Position

	From       int      `parser:"@Number Link"`
	To         int      `parser:"@Number \",\""`
	Resistance float64  `parser:"@Number \"R\"?"`
	Voltage    *float64 `parser:"(\",\" @Number \"V\"?)? \";\""`
}

var parseNetlist = participle.MustBuild[fileExpr](
	participle.Lexer(netlistLexer),
)
