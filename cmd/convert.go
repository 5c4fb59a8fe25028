package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/qif2ledger"
	"github.com/google/subcommands"
)

type convertCmd struct {
	account string
	output  string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "convert a QIF file into a plain-text double-entry ledger file"
}
func (*convertCmd) Usage() string {
	return `q2l convert -a <account> [-o <output>] [<file.qif>]

  Converts the QIF file (or stdin) into ledger entries posted against the
  given account, prepending a synthetic Opening Balance entry. Conversion is
  all-or-nothing: a malformed transaction aborts with no output.

Usage Examples:
# Convert a checking account export to stdout.
$ q2l convert -a Assets:Checking checking.qif

# Convert euro amounts into a file.
$ q2l -currency EUR convert -a Assets:Girokonto -o konto.ledger konto.qif

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account the transactions apply to (e.g. Assets:Checking)")
	f.StringVar(&c.output, "o", "", "Output file (default stdout)")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required")
		return subcommands.ExitUsageError
	}

	qif, name, err := readInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := qif2ledger.Convert(qif, c.account, Symbol())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", name, err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		fmt.Print(ledger)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(ledger), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Converted %s to %s\n", name, c.output)
	return subcommands.ExitSuccess
}
