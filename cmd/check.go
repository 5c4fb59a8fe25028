package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/qif2ledger"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "parse a QIF file and report what the conversion would produce"
}
func (*checkCmd) Usage() string {
	return `q2l check [<file.qif>]

  Parses the QIF file (or stdin) without writing any ledger output and
  prints a summary: transaction count, date range, net amount and the
  Opening Balance entry the conversion would synthesize. Exits non-zero on
  the first malformed transaction, like convert does.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qif, name, err := readInput(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, err := qif2ledger.DecodeQIF(strings.NewReader(qif), Symbol())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking %s: %v\n", name, err)
		return subcommands.ExitFailure
	}

	printMarkdown(checkReport(name, txs))
	return subcommands.ExitSuccess
}

// checkReport renders the summary of parsed transactions as markdown.
func checkReport(name string, txs []qif2ledger.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	if len(txs) == 0 {
		b.WriteString("No transactions: the conversion would produce empty output.\n")
		return b.String()
	}

	var balance qif2ledger.Balance
	net := qif2ledger.Money{}
	earliest, latest := txs[0].Date, txs[0].Date
	splits := 0
	for _, tx := range txs {
		balance.Observe(tx)
		net = net.Add(tx.Amount)
		if tx.Date.Before(earliest) {
			earliest = tx.Date
		}
		if tx.Date.After(latest) {
			latest = tx.Date
		}
		splits += len(tx.Splits)
	}
	opening, _ := balance.Opening()

	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| transactions | %d |\n", len(txs))
	if splits > 0 {
		fmt.Fprintf(&b, "| split postings | %d |\n", splits)
	}
	fmt.Fprintf(&b, "| date range | %s to %s |\n", earliest, latest)
	fmt.Fprintf(&b, "| net amount | %s |\n", net)
	fmt.Fprintf(&b, "| opening balance | %s on %s |\n", opening.Amount, opening.Date)
	return b.String()
}
