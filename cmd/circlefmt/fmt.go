package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"circlelang/formatter"
)

// fmtCmd implements the "fmt" subcommand: print a file's canonical
// formatting to standard output.
type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "Pretty-print a circle-lang source file" }
func (*fmtCmd) Usage() string {
	return `fmt <file>:
  Print the canonically formatted source. With -w, rewrite the file in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "rewrite the file in place instead of printing to stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "fmt: file not provided")
		return subcommands.ExitUsageError
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fmt: %v\n", err)
		return subcommands.ExitFailure
	}
	formatted := formatter.Format(string(data))
	if c.write {
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "fmt: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	fmt.Print(formatted)
	return subcommands.ExitSuccess
}
