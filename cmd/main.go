// Package cmd implements the CLI application that converts QIF files into
// ledger files. A main package calls Register() to install the subcommands,
// then Execute() on the user-selected one.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/qif2ledger"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&convertCmd{}, "conversion")
	c.Register(&checkCmd{}, "conversion")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", qif2ledger.DefaultSymbol, "Currency symbol or ISO 4217 code used to render amounts")

// Symbol resolves the -currency flag into the rendering symbol.
func Symbol() string { return qif2ledger.ResolveSymbol(*currency) }

// readInput returns the whole QIF text from the single positional file
// argument, or from stdin when no argument is given, along with a name for
// messages.
func readInput(f *flag.FlagSet) (text, name string, err error) {
	switch f.NArg() {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(data), "stdin", nil
	case 1:
		name := f.Arg(0)
		data, err := os.ReadFile(name)
		if err != nil {
			return "", "", fmt.Errorf("cannot read input file: %w", err)
		}
		return string(data), name, nil
	default:
		return "", "", fmt.Errorf("expected at most one input file, got %d arguments", f.NArg())
	}
}
