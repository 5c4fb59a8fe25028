package qif2ledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with an exact decimal amount and the
// symbol used to render it. The symbol carries no arithmetic meaning: QIF
// files are single-currency and the whole conversion shares one symbol.
type Money struct {
	value  decimal.Decimal
	symbol string
}

// M returns a Money for the given decimal value and symbol.
func M(value decimal.Decimal, symbol string) Money {
	return Money{value: value, symbol: symbol}
}

// ParseAmount parses a QIF amount value into a Money.
//
// QIF amounts are plain signed decimals, possibly with thousands separators
// ("-1,570.73"). The separators are stripped before parsing.
func ParseAmount(raw string, symbol string) (Money, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return M(value, symbol), nil
}

// String renders the amount with its currency symbol and two fraction
// digits, sign after the symbol: "$-175.00".
func (m Money) String() string { return m.symbol + m.value.StringFixed(2) }

// Decimal returns the exact decimal value of the amount.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), symbol: m.symbol} }

// Add returns m+n. The "" symbol is totally weak.
func (m Money) Add(n Money) Money {
	sym := m.symbol
	if sym == "" {
		sym = n.symbol
	}
	return Money{value: m.value.Add(n.value), symbol: sym}
}

// DefaultSymbol is the currency symbol used when none is configured.
const DefaultSymbol = "$"

// ResolveSymbol maps a currency designation to the symbol used in ledger
// output. An ISO 4217 code ("USD", "EUR", "GBP") resolves to its grapheme
// through the go-money currency table; anything else is taken verbatim as
// the symbol, and the empty string falls back to DefaultSymbol.
func ResolveSymbol(currency string) string {
	if currency == "" {
		return DefaultSymbol
	}
	if cur := money.GetCurrency(strings.ToUpper(currency)); cur != nil {
		return cur.Grapheme
	}
	return currency
}
