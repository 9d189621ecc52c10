package runtime

import (
	"io"

	"circlelang/ast"
	"circlelang/diag"
	"circlelang/number"
	"circlelang/token"
)

// Evaluate dispatches on n's concrete type and returns the Object it
// computes, per §4.6's per-node-kind rules.
func Evaluate(n ast.Node, gca *Array) (Object, error) {
	switch v := n.(type) {
	case ast.Number:
		return &Number{Value: v.Value}, nil
	case ast.Array:
		return NewArray(v.Elements), nil
	case ast.Index:
		return evaluateIndex(v, gca)
	case ast.OperatorBinary:
		return evaluateBinary(v, gca)
	case ast.OperatorUnary:
		return evaluateUnary(v, gca)
	case ast.Assign:
		return evaluateAssign(v, gca)
	default:
		return nil, newRuntimeError(n.Range(), "can not evaluate %T", n)
	}
}

// Execute dispatches on n's concrete type. Assign and Array have their
// own execution semantics (a write, and the loop); every other node
// kind is "evaluate then execute the result" (§4.6), which is also how
// indexing into an intrinsic invokes it.
func Execute(n ast.Node, gca *Array, in io.Reader, out io.Writer) error {
	if a, ok := n.(ast.Assign); ok {
		return executeAssign(a, gca, in, out)
	}
	obj, err := Evaluate(n, gca)
	if err != nil {
		return err
	}
	return obj.Execute(gca, in, out)
}

func evaluateIndex(n ast.Index, gca *Array) (Object, error) {
	var subject Object
	if n.Subject == nil {
		subject = gca
	} else {
		obj, err := Evaluate(n.Subject, gca)
		if err != nil {
			return nil, err
		}
		subject = obj
	}
	arr, ok := subject.(*Array)
	if !ok {
		return nil, newRuntimeError(n.Rng, "Attempting to index non array object")
	}
	idxVal, err := evaluateNumberNode(n.Idx, gca)
	if err != nil {
		return nil, err
	}
	return arr.Index(idxVal).Evaluate(gca)
}

func evaluateNumberNode(n ast.Node, gca *Array) (number.Value, error) {
	obj, err := Evaluate(n, gca)
	if err != nil {
		return number.Value{}, err
	}
	num, ok := obj.(*Number)
	if !ok {
		return number.Value{}, newRuntimeError(n.Range(), "Can not operate on non number")
	}
	return num.Value, nil
}

// gcaPath walks an Index chain and returns the sequence of Values
// describing a write path rooted in gca, or rooted=false if the chain's
// innermost subject is something other than the implicit gca (§4.6's
// get_gca_location). n must itself be an ast.Index; any other node
// never roots in gca.
func gcaPath(n ast.Node, gca *Array) (path []number.Value, rooted bool, err error) {
	idx, ok := n.(ast.Index)
	if !ok {
		return nil, false, nil
	}
	v, err := evaluateNumberNode(idx.Idx, gca)
	if err != nil {
		return nil, false, err
	}
	if idx.Subject == nil {
		return []number.Value{v}, true, nil
	}
	prefix, rooted, err := gcaPath(idx.Subject, gca)
	if err != nil {
		return nil, false, err
	}
	if !rooted {
		return nil, false, nil
	}
	return append(prefix, v), true, nil
}

func evaluateAssign(a ast.Assign, gca *Array) (Object, error) {
	rhs, err := Evaluate(a.RHS, gca)
	if err != nil {
		return nil, err
	}
	path, rooted, err := gcaPath(a.LHS, gca)
	if err != nil {
		return nil, err
	}
	if rooted {
		if err := gca.InsertPath(path, rhs, a.LHS.Range()); err != nil {
			return nil, err
		}
	}
	// Assigning through a non-gca subject is a silent no-op, by design
	// (§4.6) — only the global array is observable.
	return rhs, nil
}

func executeAssign(a ast.Assign, gca *Array, in io.Reader, out io.Writer) error {
	_, err := evaluateAssign(a, gca)
	return err
}

func evaluateBinary(n ast.OperatorBinary, gca *Array) (Object, error) {
	lhs, err := evaluateNumberNode(n.LHS, gca)
	if err != nil {
		return nil, err
	}
	rhs, err := evaluateNumberNode(n.RHS, gca)
	if err != nil {
		return nil, err
	}
	v, err := applyBinary(n.Kind, lhs, rhs, n.Rng)
	if err != nil {
		return nil, err
	}
	return &Number{Value: v}, nil
}

func orderingOp(fn func(number.Value, number.Value) (number.Value, error), a, b number.Value, r diag.Range) (number.Value, error) {
	v, err := fn(a, b)
	if err != nil {
		return number.Value{}, newRuntimeError(r, "%s", err.Error())
	}
	return v, nil
}

func applyBinary(kind token.Type, a, b number.Value, r diag.Range) (number.Value, error) {
	switch kind {
	case token.Plus:
		return number.Add(a, b), nil
	case token.Minus:
		return number.Sub(a, b), nil
	case token.Star:
		return number.Mul(a, b), nil
	case token.Slash:
		v, err := number.Div(a, b)
		if err != nil {
			return number.Value{}, newRuntimeError(r, "division by zero")
		}
		return v, nil
	case token.And:
		return number.And(a, b), nil
	case token.Or:
		return number.Or(a, b), nil
	case token.Equal:
		return number.EqualValue(a, b), nil
	case token.NotEqual:
		return number.NotEqualValue(a, b), nil
	case token.Less:
		return orderingOp(number.LessThanValue, a, b, r)
	case token.LessOrEqual:
		return orderingOp(number.LessOrEqualValue, a, b, r)
	case token.Greater:
		return orderingOp(number.GreaterThanValue, a, b, r)
	case token.GreaterOrEqual:
		return orderingOp(number.GreaterOrEqualValue, a, b, r)
	default:
		return number.Value{}, newRuntimeError(r, "unsupported operator %q", kind)
	}
}

func evaluateUnary(n ast.OperatorUnary, gca *Array) (Object, error) {
	rhs, err := evaluateNumberNode(n.RHS, gca)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case token.Minus:
		return &Number{Value: number.Neg(rhs)}, nil
	case token.Not:
		return &Number{Value: number.Not(rhs)}, nil
	default:
		return nil, newRuntimeError(n.Rng, "unsupported unary operator %q", n.Kind)
	}
}
