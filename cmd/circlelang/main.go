// Command circlelang is circle-lang's primary binary (§6): a single
// positional source-file argument, plus --help/--debug/--from-bf. Unlike
// cmd/circlefmt (and nilan's own cmd_*.go/subcommands setup), this binary
// has no leading subcommand verb, so it is driven directly by
// flag.FlagSet rather than github.com/google/subcommands, matching §6's
// external contract byte for byte.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"circlelang/brainfuck"
	"circlelang/debugger"
	"circlelang/diag"
	"circlelang/lexer"
	"circlelang/parser"
	"circlelang/runtime"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("circlelang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debugFlag := fs.Bool("debug", false, "step through execution with the interactive debugger")
	fromBF := fs.Bool("from-bf", false, "transpile standard Brainfuck input to circle-lang and print it, without interpreting")
	help := fs.Bool("help", false, "show usage")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: circlelang [--debug] [--from-bf] <source-file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *help {
		fs.Usage()
		return 1
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "circlelang: %v\n", err)
		return 1
	}
	source := string(data)

	if *fromBF {
		fmt.Fprint(stdout, brainfuck.Transpile(source))
		return 0
	}

	return interpret(source, *debugFlag, stdin, stdout, stderr)
}

// interpret lexes, parses, and (per §7) runs a program to completion,
// printing every diagnostic before moving to the next phase and
// aborting early only on a fatal one. Runtime errors are printed to
// standard error but the process still exits 0 (§6: "an implementation
// may choose 1 — this must be documented but is not observable by
// tests").
func interpret(source string, debug bool, stdin io.Reader, stdout, stderr io.Writer) int {
	tokens, lexDiags := lexer.Scan(source)
	printDiags(stderr, lexDiags)
	if lexDiags.Fatal() {
		return 0
	}

	program, parseDiags := parser.Parse(tokens)
	printDiags(stderr, parseDiags)
	if parseDiags.Fatal() {
		return 0
	}

	gca := runtime.NewGCA(program)

	if debug {
		dbg, err := debugger.New(source, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "circlelang: could not start debugger: %v\n", err)
			return 0
		}
		defer dbg.Close()
		dbg.Attach(gca)
	}

	if err := runtime.RunGCA(gca, stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
	}
	return 0
}

func printDiags(stderr io.Writer, bag *diag.Bag) {
	for _, d := range bag.Entries() {
		fmt.Fprintln(stderr, d.String())
	}
}
