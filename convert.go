package qif2ledger

import (
	"io"
	"strings"
)

// DecodeQIF reads a complete QIF document from r and returns its
// transactions in file order. Amounts are attached to the given currency
// symbol for rendering. The decode is fail-fast: the first malformed record
// group aborts it with a *ParseError or *ValidationError.
func DecodeQIF(r io.Reader, symbol string) ([]Transaction, error) {
	records, err := scanRecords(r)
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, len(records))
	for _, rec := range records {
		tx, err := buildTransaction(rec, symbol)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Convert translates a whole QIF document into ledger text.
//
// account is the "self" side of every posting (e.g. "Assets:Checking").
// currencySymbol prefixes every rendered amount; the empty string means
// DefaultSymbol. The synthetic Opening Balance entry comes first, then the
// transactions in original file order. Identical input always produces
// byte-identical output. A QIF document with no transactions converts to
// the empty string; malformed input returns a typed error and no output.
func Convert(qif string, account string, currencySymbol string) (string, error) {
	if currencySymbol == "" {
		currencySymbol = DefaultSymbol
	}

	txs, err := DecodeQIF(strings.NewReader(qif), currencySymbol)
	if err != nil {
		return "", err
	}
	if len(txs) == 0 {
		return "", nil
	}

	var balance Balance
	for _, tx := range txs {
		balance.Observe(tx)
	}
	opening, _ := balance.Opening()

	var b strings.Builder
	entries := append([]Transaction{opening}, txs...)
	if err := EncodeLedger(&b, account, entries...); err != nil {
		return "", err
	}
	return b.String(), nil
}
