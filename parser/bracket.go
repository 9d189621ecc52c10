package parser

import (
	"circlelang/diag"
	"circlelang/token"
)

// item is whatever Pass A or Pass B can produce as a member of an
// element's content list: a plain token, or a node built by an earlier
// pass. Concrete types: token.Token, DoubleBracketNode, SingleBracketNode.
type item any

// DoubleBracketNode is Pass A's block node: `((` and `))` delimit it,
// `;` splits its body into elements (§4.5 Pass A).
type DoubleBracketNode struct {
	Elements [][]item
	Rng      diag.Range
}

// SingleBracketNode is Pass B's grouping/indexing node: `(` and `)`
// delimit it (§4.5 Pass B).
type SingleBracketNode struct {
	Children []item
	Rng      diag.Range
}

type rawElement struct {
	items    []item
	sepRange diag.Range
}

type bracketFrame struct {
	raws    []rawElement
	pending []item
	open    token.Token
}

// passA performs double-bracket recovery over the full token stream. The
// source itself is the implicit outermost block: passA never requires an
// explicit leading `((`/trailing `))` to produce the top-level node.
func passA(tokens []token.Token, diags *diag.Bag) DoubleBracketNode {
	stack := []*bracketFrame{{}}

	flush := func(f *bracketFrame, sep diag.Range) {
		f.raws = append(f.raws, rawElement{items: f.pending, sepRange: sep})
		f.pending = nil
	}

	for _, tok := range tokens {
		top := stack[len(stack)-1]
		switch tok.Type {
		case token.Comment:
			continue
		case token.OpenBracket2:
			stack = append(stack, &bracketFrame{open: tok})
		case token.CloseBracket2:
			if len(stack) == 1 {
				diags.Errorf(tok.Range, msgUnmatchedClose2)
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			flush(f, tok.Range)
			node := DoubleBracketNode{
				Elements: finalizeElements(f.raws, diags),
				Rng:      diag.Range{Start: f.open.Range.Start, End: tok.Range.End},
			}
			parent := stack[len(stack)-1]
			parent.pending = append(parent.pending, node)
		case token.Semicolon:
			flush(top, tok.Range)
		default:
			top.pending = append(top.pending, tok)
		}
	}

	for len(stack) > 1 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		diags.Errorf(f.open.Range, msgUnmatchedOpen2)
		flush(f, f.open.Range)
		node := DoubleBracketNode{
			Elements: finalizeElements(f.raws, diags),
			Rng:      f.open.Range,
		}
		parent := stack[len(stack)-1]
		parent.pending = append(parent.pending, node)
	}

	root := stack[0]
	flush(root, diag.Range{})
	return DoubleBracketNode{Elements: finalizeElements(root.raws, diags)}
}

// finalizeElements drops the trailing empty element a final `;` produces,
// warns on any other empty element (msgExtraSemicolon), and otherwise
// keeps element order.
func finalizeElements(raws []rawElement, diags *diag.Bag) [][]item {
	var out [][]item
	for i, re := range raws {
		if len(re.items) == 0 {
			if i == len(raws)-1 {
				continue
			}
			diags.Warnf(re.sepRange, msgExtraSemicolon)
			continue
		}
		out = append(out, re.items)
	}
	return out
}

// applyPassB runs single-bracket recovery over every element of node,
// recursing first into any nested DoubleBracketNode so its own elements
// are resolved before the outer scan runs.
func applyPassB(node DoubleBracketNode, diags *diag.Bag) DoubleBracketNode {
	out := DoubleBracketNode{Rng: node.Rng}
	for _, els := range node.Elements {
		processed := make([]item, len(els))
		for i, it := range els {
			if dbn, ok := it.(DoubleBracketNode); ok {
				processed[i] = applyPassB(dbn, diags)
			} else {
				processed[i] = it
			}
		}
		out.Elements = append(out.Elements, passB(processed, diags))
	}
	return out
}

type singleBracketFrame struct {
	children []item
	open     token.Token
}

// passB resolves `(`/`)` grouping within one already-Pass-A'd element.
// Unmatched brackets are each reported; an unmatched `(` left open at the
// end of the element has its accumulated children flattened into the
// parent as recovery rather than discarded.
func passB(items []item, diags *diag.Bag) []item {
	stack := []*singleBracketFrame{{}}

	for _, it := range items {
		top := stack[len(stack)-1]
		tok, isToken := it.(token.Token)
		switch {
		case isToken && tok.Type == token.OpenBracket:
			stack = append(stack, &singleBracketFrame{open: tok})
		case isToken && tok.Type == token.CloseBracket:
			if len(stack) == 1 {
				diags.Errorf(tok.Range, msgUnmatchedClose1)
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node := SingleBracketNode{
				Children: f.children,
				Rng:      diag.Range{Start: f.open.Range.Start, End: tok.Range.End},
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
		default:
			top.children = append(top.children, it)
		}
	}

	for len(stack) > 1 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		diags.Errorf(f.open.Range, msgUnmatchedOpen1)
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, f.children...)
	}

	return stack[0].children
}
