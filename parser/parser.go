// Package parser turns a circle-lang token stream into an ast.Array via
// the three-pass bracket-recovery scheme of §4.5: double-bracket recovery
// (bracket.go's passA), single-bracket recovery (bracket.go's passB), and
// AST assembly (assemble.go's Pass C). Unlike nilan's recursive-descent
// parser.go, there is no grammar-rule-per-precedence-level call chain;
// bracket matching is resolved explicitly with a stack per pass, and
// operator precedence is resolved once per element via shunting-yard.
package parser

import (
	"circlelang/ast"
	"circlelang/diag"
	"circlelang/token"
)

// Parse runs all three passes over tokens and returns the top-level
// program (the outermost block's elements lifted into an Array, per
// §4.5's closing line) plus every diagnostic collected along the way.
// A program with no top-level elements at all (§8 scenario 1, the empty
// source) is rejected with a fatal diagnostic rather than silently
// producing a zero-length gca.
func Parse(tokens []token.Token) (ast.Array, *diag.Bag) {
	diags := &diag.Bag{}
	top := passA(tokens, diags)
	top = applyPassB(top, diags)
	program := assembleArray(top, diags)
	if len(program.Elements) == 0 {
		diags.Errorf(diag.Range{}, "Zero sized array are not allowed")
	}
	return program, diags
}
