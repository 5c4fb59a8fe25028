package qif2ledger

// OpeningPayee and OpeningCategory are the fixed header and equity side of
// the synthetic opening entry.
const (
	OpeningPayee    = "Opening Balance"
	OpeningCategory = "Equity"
)

// Balance accumulates transaction amounts in input order. Its only purpose
// is to compute the synthetic Opening Balance entry; the accumulator is
// scoped to one conversion call so that reusing the package as a library
// cannot leak state across conversions.
type Balance struct {
	sum   Money
	first Date
	count int
}

// Observe adds one transaction to the running balance. Transactions must be
// observed in input order: the first one dates the opening entry.
func (b *Balance) Observe(tx Transaction) {
	if b.count == 0 {
		b.first = tx.Date
	}
	b.count++
	b.sum = b.sum.Add(tx.Amount)
}

// Opening returns the synthetic Opening Balance transaction: the negation
// of the observed sum, dated as the first transaction so that the entry
// sorts first under any date-ordering tool. Equity absorbs the account's
// starting balance, so the explicit amounts of the whole ledger sum to
// zero. Returns false when nothing was observed.
func (b *Balance) Opening() (Transaction, bool) {
	if b.count == 0 {
		return Transaction{}, false
	}
	return Transaction{
		Date:     b.first,
		Payee:    OpeningPayee,
		Category: OpeningCategory,
		Amount:   b.sum.Neg(),
	}, true
}
