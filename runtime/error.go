// Package runtime executes a parsed circle-lang program: §4.6 promotes
// every ast.Node to a runtime object carrying Evaluate/Execute, keyed
// against the single global circular array gca. This replaces nilan's
// interpreter package — the shape (a small tree-walking executor with a
// dedicated runtime error type, caught once at the top) is the same, but
// dispatch is a type switch over ast.Node rather than Visitor/Accept, and
// errors are threaded back as plain Go errors instead of panic/recover,
// matching the rest of this module.
package runtime

import (
	"fmt"

	"circlelang/diag"
)

// RuntimeError is raised from deep inside Evaluate/Execute and returned
// up to Run's caller, where §7 has it printed to standard error. It is
// the direct analog of nilan's interpreter.RuntimeError, carrying a
// diag.Range instead of a bare line/column pair so it renders through
// the same diagnostic format as lexer/parser errors.
type RuntimeError struct {
	Range   diag.Range
	Message string
}

func newRuntimeError(r diag.Range, format string, args ...any) *RuntimeError {
	return &RuntimeError{Range: r, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return diag.Diagnostic{Severity: diag.Error, Range: e.Range, Message: e.Message}.String()
}
