package qif2ledger

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Uncategorized is the placeholder account used when a QIF transaction has
// no category. It keeps the output parseable by ledger and easy to
// find/replace afterwards.
const Uncategorized = "Uncategorized"

// ledger treats two or more spaces (or a tab) as the separator between an
// account name and its amount, so names must not contain them.
var hardSeparators = regexp.MustCompile(`[ ]{2,}|\t`)

// accountName makes a category or account name comply with the ledger
// format by collapsing hard separators to a single space.
func accountName(name string) string {
	return hardSeparators.ReplaceAllString(strings.TrimSpace(name), " ")
}

// EncodeTransaction writes one double-entry ledger block for tx:
//
//	<date> <payee>
//	    ;<memo>
//	    <category>  <amount>
//	    <account>
//
// The memo line is emitted only when the memo is non-empty. Split
// transactions render one posting per split instead of the single category
// posting. The account posting carries no amount: ledger infers it as the
// negation of the explicit postings, so the entry balances by construction.
func EncodeTransaction(w io.Writer, tx Transaction, account string) error {
	var b strings.Builder

	header := tx.Date.String()
	if tx.Payee != "" {
		header += " " + tx.Payee
	}
	b.WriteString(header)
	b.WriteByte('\n')

	if tx.Memo != "" {
		fmt.Fprintf(&b, "    ;%s\n", tx.Memo)
	}

	if len(tx.Splits) > 0 {
		for _, s := range tx.Splits {
			if s.Memo != "" {
				fmt.Fprintf(&b, "    %s  %s  ;%s\n", categoryName(s.Category), s.Amount, s.Memo)
			} else {
				fmt.Fprintf(&b, "    %s  %s\n", categoryName(s.Category), s.Amount)
			}
		}
	} else {
		fmt.Fprintf(&b, "    %s  %s\n", categoryName(tx.Category), tx.Amount)
	}
	fmt.Fprintf(&b, "    %s\n", accountName(account))

	_, err := io.WriteString(w, b.String())
	return err
}

func categoryName(category string) string {
	if strings.TrimSpace(category) == "" {
		return Uncategorized
	}
	return accountName(category)
}

// EncodeLedger writes all transactions as ledger entries in order,
// separated by exactly one blank line.
func EncodeLedger(w io.Writer, account string, txs ...Transaction) error {
	for i, tx := range txs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := EncodeTransaction(w, tx, account); err != nil {
			return err
		}
	}
	return nil
}
