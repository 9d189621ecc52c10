package runtime

import "circlelang/ast"

// Hook lets an optional external controller observe execution before
// every statement-level node runs, at the array nesting depth it runs
// at (§4.9: the debugger's step-over/step-into/step-out controller).
// Execution is single-threaded and cooperative (§5) — only one program
// is ever running at a time — so a single package-level hook slot is
// enough to wire a debugger in without threading a parameter through
// every Evaluate/Execute call.
type Hook interface {
	// BeforeExecute is called immediately before n executes at the given
	// array nesting depth (1 = gca's own top-level body). Returning a
	// non-nil error aborts execution with that error.
	BeforeExecute(n ast.Node, depth int) error
}

var (
	activeHook   Hook
	currentDepth int
)

// SetHook installs h as the active execution hook, or clears it when h
// is nil. Ordinary (non-debug) interpretation never calls this.
func SetHook(h Hook) { activeHook = h }
