// Package debugger implements the optional step controller of §4.9: a
// breakpoint/step-over/step-into/step-out loop wired into runtime.Run via
// runtime.SetHook, reading commands from standard input one line at a
// time with prompt history via github.com/chzyer/readline — the library
// nilan's go.mod declares but never wires into its own bufio.Scanner
// REPLs (cmd_repl.go, cmd_repl_compiled.go); circle-lang's debugger is
// where it earns its place in the dependency graph.
package debugger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"circlelang/ast"
	"circlelang/lexer"
	"circlelang/parser"
	"circlelang/runtime"
)

// Debugger is a runtime.Hook that pauses execution before each
// statement whose array nesting depth is at or below the current step
// target, or whose line carries a breakpoint, printing the source line
// and waiting for one command.
type Debugger struct {
	lines       []string
	breakpoints map[int]bool // 1-based source lines
	stepping    bool
	target      int

	rl  *readline.Instance
	out io.Writer
	gca *runtime.Array
}

// New builds a Debugger over source (split into display lines) writing
// its prompts and output to out. The returned Debugger has not yet been
// wired into the runtime — call Attach once a gca exists.
func New(source string, out io.Writer) (*Debugger, error) {
	rl, err := readline.New("(dbg) ")
	if err != nil {
		return nil, err
	}
	return &Debugger{
		lines:       strings.Split(source, "\n"),
		breakpoints: make(map[int]bool),
		stepping:    true,
		target:      1 << 30, // stop at every statement until the first command narrows this
		rl:          rl,
		out:         out,
	}, nil
}

// Close releases the underlying line editor.
func (d *Debugger) Close() error { return d.rl.Close() }

// Attach records gca (needed for "g" and "e") and installs d as the
// active runtime.Hook, so every statement executed against gca (or any
// array nested within it) passes through BeforeExecute first.
func (d *Debugger) Attach(gca *runtime.Array) {
	d.gca = gca
	runtime.SetHook(d)
}

// BeforeExecute implements runtime.Hook (§4.9).
func (d *Debugger) BeforeExecute(n ast.Node, depth int) error {
	line := n.Range().Start.Line + 1 // 1-based, matching §6 diagnostics and "b N"
	if !d.breakpoints[line] && !(d.stepping && depth <= d.target) {
		return nil
	}
	for {
		d.printSourceLine(line)
		input, err := d.rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		resume, err := d.handle(strings.TrimSpace(input), depth)
		if err != nil {
			fmt.Fprintln(d.out, err)
			continue
		}
		if resume {
			return nil
		}
	}
}

func (d *Debugger) printSourceLine(line int) {
	text := ""
	if line-1 >= 0 && line-1 < len(d.lines) {
		text = d.lines[line-1]
	}
	fmt.Fprintf(d.out, "%d: %s\n", line, text)
}

// handle executes one debugger command. resume reports whether
// execution should continue past BeforeExecute's wait loop.
func (d *Debugger) handle(cmd string, depth int) (resume bool, err error) {
	verb, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)
	switch verb {
	case "i": // step-into: widen the target so deeper statements also stop
		d.stepping = true
		d.target = depth + 1
		return true, nil
	case "o": // step-out: narrow the target so only shallower statements stop
		d.stepping = true
		d.target = depth - 1
		return true, nil
	case "n": // step-over: stop again at this same depth, not deeper
		d.stepping = true
		d.target = depth
		return true, nil
	case "c": // continue: run until a breakpoint, clearing the step target
		d.stepping = false
		return true, nil
	case "b":
		n, convErr := strconv.Atoi(arg)
		if convErr != nil {
			return false, fmt.Errorf("usage: b <line>")
		}
		d.breakpoints[n] = true
		return false, nil
	case "e":
		return false, d.evaluate(arg)
	case "g":
		d.dumpGCA()
		return false, nil
	case "":
		return false, nil
	default:
		return false, fmt.Errorf("Unrecognized command.")
	}
}

// evaluate lexes and parses arg as a single ad-hoc circle-lang element
// and evaluates it against the attached gca, printing the result.
func (d *Debugger) evaluate(arg string) error {
	tokens, diags := lexer.Scan(arg)
	if diags.Fatal() {
		for _, diagnostic := range diags.Entries() {
			fmt.Fprintln(d.out, diagnostic)
		}
		return nil
	}
	program, pdiags := parser.Parse(tokens)
	if pdiags.Fatal() {
		for _, diagnostic := range pdiags.Entries() {
			fmt.Fprintln(d.out, diagnostic)
		}
		return nil
	}
	if len(program.Elements) == 0 {
		return nil
	}
	obj, err := runtime.Evaluate(program.Elements[0], d.gca)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, describe(obj))
	return nil
}

// dumpGCA prints every populated cell of the attached gca ("g" command).
func (d *Debugger) dumpGCA() {
	for _, cell := range d.gca.Cells() {
		fmt.Fprintf(d.out, "%s => %s\n", cell.Key.Value(), describe(cell.Obj))
	}
}

func describe(obj runtime.Object) string {
	switch v := obj.(type) {
	case *runtime.Number:
		return v.Value.String()
	case *runtime.Array:
		return fmt.Sprintf("<array len=%d>", v.Length())
	case runtime.StdInput:
		return "<intrinsic std_input>"
	case runtime.StdOutput:
		return "<intrinsic std_output>"
	case runtime.StdDecompose:
		return "<intrinsic std_decompose>"
	default:
		return fmt.Sprintf("%v", obj)
	}
}
