// Package ast defines circle-lang's syntax tree. Per the specification's
// explicit design note (§9, "Polymorphic AST/runtime objects"), this is a
// tagged sum matched with Go type switches rather than nilan's visitor
// pattern (ast/interfaces.go's ExpressionVisitor/StmtVisitor + Accept):
// the source material's virtual dispatch is deliberately not carried
// forward here. Node still plays the role nilan's Expression/Stmt
// interfaces play (the thing every AST type implements), but callers
// switch on concrete type instead of calling an Accept method.
package ast

import (
	"circlelang/diag"
	"circlelang/number"
	"circlelang/token"
)

// Node is implemented by every AST node kind: Array, Assign, Index,
// OperatorBinary, OperatorUnary, Number. Callers operate on a Node by
// type-switching on the concrete type, not by double dispatch.
type Node interface {
	Range() diag.Range
	node()
}

// Array is a `((…; …; …))` block: a sequence of elements, each itself an
// AST node, keyed implicitly by position 0..len-1.
type Array struct {
	Elements []Node
	Rng      diag.Range
}

func (a Array) Range() diag.Range { return a.Rng }
func (Array) node()               {}

// Assign is `:=`: lhs must resolve to an Index at runtime (Pass C
// enforces this syntactically already, by only accepting `:=` when the
// previous assembled item is an Index).
type Assign struct {
	LHS Index
	RHS Node
	Rng diag.Range
}

func (a Assign) Range() diag.Range { return a.Rng }
func (Assign) node()               {}

// Index is `subject(index)` or, when Subject is nil, the bare `(index)`
// form that defaults to the global circular array at runtime.
type Index struct {
	Subject Node // nil means "default to gca"
	Idx     Node
	Rng     diag.Range
}

func (i Index) Range() diag.Range { return i.Rng }
func (Index) node()               {}

// OperatorBinary applies a binary operator (token.Type.IsBinaryOperator())
// to two operands.
type OperatorBinary struct {
	Kind     token.Type
	LHS, RHS Node
	Rng      diag.Range
}

func (o OperatorBinary) Range() diag.Range { return o.Rng }
func (OperatorBinary) node()               {}

// OperatorUnary applies a unary operator (- or !) to one operand.
type OperatorUnary struct {
	Kind token.Type
	RHS  Node
	Rng  diag.Range
}

func (o OperatorUnary) Range() diag.Range { return o.Rng }
func (OperatorUnary) node()               {}

// Number is a literal symbolic number.
type Number struct {
	Value number.Value
	Rng   diag.Range
}

func (n Number) Range() diag.Range { return n.Rng }
func (Number) node()               {}

// Placeholder is the Number("Place_holder_to_continue_parsing")-style
// recovery node Pass C substitutes when assembly fails partway through
// an element, letting the parser keep going instead of aborting (§4.5).
func Placeholder(r diag.Range) Number {
	return Number{Value: number.FromLetters("Place_holder_to_continue_parsing"), Rng: r}
}
