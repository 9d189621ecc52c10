package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"circlelang/diag"
	"circlelang/lexer"
	"circlelang/parser"
)

// checkCmd implements the "check" subcommand: lex and parse a file,
// printing every collected diagnostic sorted by start position (§6) and
// exiting non-zero iff any diagnostic was fatal.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "Lex and parse a file, reporting diagnostics" }
func (*checkCmd) Usage() string {
	return `check <file>:
  Report every lexical and structural diagnostic for a source file.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "check: file not provided")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "check: %v\n", err)
		return subcommands.ExitFailure
	}

	tokens, lexDiags := lexer.Scan(string(data))
	fatal := printAll(lexDiags)
	if lexDiags.Fatal() {
		return exitFor(fatal)
	}

	_, parseDiags := parser.Parse(tokens)
	fatal = fatal || printAll(parseDiags)
	return exitFor(fatal)
}

func printAll(bag *diag.Bag) (fatal bool) {
	for _, d := range bag.Entries() {
		fmt.Println(d.String())
	}
	return bag.Fatal()
}

func exitFor(fatal bool) subcommands.ExitStatus {
	if fatal {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
