package runtime

import (
	"io"

	"circlelang/number"
)

// Object is the runtime value every ast.Node evaluates to and every
// executable position runs — §4.6's "AST node promoted to a runtime
// object with two operations".
type Object interface {
	Evaluate(gca *Array) (Object, error)
	Execute(gca *Array, in io.Reader, out io.Writer) error
}

// Number is the runtime wrapper around a scalar number.Value.
type Number struct {
	Value number.Value
}

// Evaluate clones the number (§4.6: "evaluate clones itself").
func (n *Number) Evaluate(gca *Array) (Object, error) {
	return &Number{Value: n.Value}, nil
}

// Execute is a no-op for plain numbers.
func (n *Number) Execute(gca *Array, in io.Reader, out io.Writer) error {
	return nil
}
