package runtime

import (
	"io"

	"circlelang/ast"
)

// NewGCA constructs the global circular array from program (the top-level
// Array the parser produces) and installs the standard intrinsics at their
// well-known slots, without running it. Split out from Run so a caller
// (debugger.Debugger.Attach) can install a Hook against this exact gca
// before execution starts.
func NewGCA(program ast.Array) *Array {
	gca := NewArray(program.Elements)
	installIntrinsics(gca)
	return gca
}

// Run constructs the global circular array from program and runs gca's
// own execution loop to completion, threading in/out through to every
// std_input/std_output invocation. Any RuntimeError is returned to the
// caller, which per §6/§7 prints it to standard error — the single
// top-level catch point §4.6 describes.
func Run(program ast.Array, in io.Reader, out io.Writer) error {
	gca := NewGCA(program)
	return gca.Execute(gca, in, out)
}

// RunGCA runs an already-constructed gca (see NewGCA) to completion. Used
// by the --debug path, which needs the gca built before execution starts.
func RunGCA(gca *Array, in io.Reader, out io.Writer) error {
	return gca.Execute(gca, in, out)
}
