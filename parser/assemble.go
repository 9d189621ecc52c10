package parser

import (
	"circlelang/ast"
	"circlelang/diag"
	"circlelang/token"
)

// entry is one slot of Pass C's intermediate list: either an
// already-built AST node, or an operator token still awaiting assembly.
type entry struct {
	node ast.Node
	op   *token.Token
}

// assembleArray builds an ast.Array from a DoubleBracketNode, recursing
// into each of its elements independently.
func assembleArray(node DoubleBracketNode, diags *diag.Bag) ast.Array {
	elements := make([]ast.Node, len(node.Elements))
	for i, els := range node.Elements {
		elements[i] = assembleElement(els, diags)
	}
	return ast.Array{Elements: elements, Rng: node.Rng}
}

// assembleElement walks one element's items once (§4.5 Pass C),
// resolving Index subject-attachment and nested Arrays as it goes,
// handling `:=` inline (it consumes the rest of the element as its
// right-hand side), and otherwise folding unary operators and then
// binary operators via shunting-yard.
func assembleElement(items []item, diags *diag.Bag) ast.Node {
	var entries []entry

	for i := 0; i < len(items); i++ {
		it := items[i]
		switch v := it.(type) {
		case token.Token:
			switch {
			case v.Type == token.Assign:
				lhs, ok := lastIndex(entries)
				if !ok {
					diags.Errorf(v.Range, msgUnexpectedAssign)
					return ast.Placeholder(v.Range)
				}
				rhs := assembleElement(items[i+1:], diags)
				return ast.Assign{LHS: lhs, RHS: rhs, Rng: diag.Range{Start: lhs.Range().Start, End: rhs.Range().End}}
			case v.Type.IsUnaryOperator(), v.Type.IsBinaryOperator():
				op := v
				entries = append(entries, entry{op: &op})
			default:
				entries = append(entries, entry{node: ast.Number{Value: v.Value, Rng: v.Range}})
			}
		case DoubleBracketNode:
			entries = append(entries, entry{node: assembleArray(v, diags)})
		case SingleBracketNode:
			inner := assembleElement(v.Children, diags)
			entries = append(entries, entry{node: resolveIndex(&entries, v, inner)})
		}
	}

	if len(entries) == 0 {
		return ast.Placeholder(diag.Range{})
	}

	folded := foldUnary(entries, diags)
	return combineBinary(folded, diags)
}

// lastIndex reports whether the last entry is a resolved Index node,
// which is the only valid `:=` left-hand side.
func lastIndex(entries []entry) (ast.Index, bool) {
	if len(entries) == 0 || entries[len(entries)-1].node == nil {
		return ast.Index{}, false
	}
	idx, ok := entries[len(entries)-1].node.(ast.Index)
	return idx, ok
}

// resolveIndex implements the subject-attachment rule: a single-bracket
// group whose last preceding entry is a Number, Array, or Index becomes
// that item's subject; otherwise the Index has no subject.
func resolveIndex(entries *[]entry, sbn SingleBracketNode, inner ast.Node) ast.Index {
	n := len(*entries)
	if n > 0 && (*entries)[n-1].node != nil {
		switch (*entries)[n-1].node.(type) {
		case ast.Number, ast.Array, ast.Index:
			subject := (*entries)[n-1].node
			*entries = (*entries)[:n-1]
			return ast.Index{Subject: subject, Idx: inner, Rng: diag.Range{Start: subject.Range().Start, End: sbn.Rng.End}}
		}
	}
	return ast.Index{Subject: nil, Idx: inner, Rng: sbn.Rng}
}

// foldUnary collapses maximal prefixes of unary operators (right
// associative) appearing wherever an operand is expected: at the start
// of the element or immediately after another operator.
func foldUnary(entries []entry, diags *diag.Bag) []entry {
	var out []entry
	expectOperand := true
	i := 0
	for i < len(entries) {
		e := entries[i]
		if e.node != nil {
			out = append(out, e)
			expectOperand = false
			i++
			continue
		}
		if !expectOperand || !e.op.Type.IsUnaryOperator() {
			out = append(out, e)
			expectOperand = true
			i++
			continue
		}
		j := i
		for j < len(entries) && entries[j].node == nil && entries[j].op.Type.IsUnaryOperator() {
			j++
		}
		if j >= len(entries) || entries[j].node == nil {
			diags.Errorf(entries[i].op.Range, msgUnexpectedOpFmt, entries[i].op.Text)
			out = append(out, entry{node: ast.Placeholder(entries[i].op.Range)})
			return out
		}
		operand := entries[j].node
		for k := j - 1; k >= i; k-- {
			op := entries[k].op
			operand = ast.OperatorUnary{Kind: op.Type, RHS: operand, Rng: diag.Range{Start: op.Range.Start, End: operand.Range().End}}
		}
		out = append(out, entry{node: operand})
		expectOperand = false
		i = j + 1
	}
	return out
}

// combineBinary runs shunting-yard over entries (which, after foldUnary,
// alternate node/operator/node/.../node when well formed) using
// token.Type's precedence table, all operators left-associative.
func combineBinary(entries []entry, diags *diag.Bag) ast.Node {
	var outputs []ast.Node
	var ops []token.Token

	pop := func() {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if len(outputs) < 2 {
			diags.Errorf(op.Range, msgUnexpectedOpFmt, op.Text)
			outputs = append(outputs, ast.Placeholder(op.Range))
			return
		}
		rhs := outputs[len(outputs)-1]
		lhs := outputs[len(outputs)-2]
		outputs = outputs[:len(outputs)-2]
		outputs = append(outputs, ast.OperatorBinary{
			Kind: op.Type, LHS: lhs, RHS: rhs,
			Rng: diag.Range{Start: lhs.Range().Start, End: rhs.Range().End},
		})
	}

	for _, e := range entries {
		if e.node != nil {
			if len(outputs) > len(ops) {
				diags.Errorf(e.node.Range(), msgExpectedOperator)
			}
			outputs = append(outputs, e.node)
			continue
		}
		for len(ops) > 0 && ops[len(ops)-1].Type.Precedence() >= e.op.Type.Precedence() {
			pop()
		}
		ops = append(ops, *e.op)
	}
	for len(ops) > 0 {
		pop()
	}

	if len(outputs) == 0 {
		return ast.Placeholder(diag.Range{})
	}
	result := outputs[len(outputs)-1]
	if len(outputs) > 1 {
		rng := result.Range()
		diags.Errorf(rng, msgExpectedOperator)
		return ast.Placeholder(rng)
	}
	return result
}
