// Command circlefmt is the formatter/diagnostic-check shell §1 calls an
// external collaborator of the core ("specified only at its interface").
// It is structured the way nilan drives its own binary — one cmd_*.go
// file per github.com/google/subcommands subcommand — except nilan's own
// main.go never actually registers its commands with the subcommands
// library (it calls the REPL directly instead); circlefmt finishes that
// wiring.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&fmtCmd{}, "")
	subcommands.Register(&checkCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
