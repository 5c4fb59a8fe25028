package qif2ledger

// Transaction is the unit of conversion: one QIF record group decoded into
// its fields. A Transaction always carries a valid date and amount; payee,
// memo, number and category may be empty.
type Transaction struct {
	Date     Date
	Payee    string
	Memo     string
	Num      string // check or reference number; parsed but never rendered
	Amount   Money  // signed, in source account terms; for splits, the total
	Category string
	Splits   []Split
}

// Split is one 'S'/'E'/'$' posting of a split transaction.
type Split struct {
	Category string
	Memo     string
	Amount   Money
}

// buildTransaction decodes one record group into a Transaction.
//
// The group is an accumulator keyed by field code, tolerant of any field
// order, with last-value-wins semantics for repeated codes. 'U' is the high
// precision duplicate of 'T' and takes precedence when both are present.
// Cleared status ('C'), addresses ('A') and unknown codes are ignored.
// Split fields are positional: 'S' opens a new split, 'E' and '$' attach to
// the most recent one.
func buildTransaction(rec record, symbol string) (Transaction, error) {
	values := make(map[byte]string)
	var splits []Split

	for _, f := range rec.fields {
		switch f.code {
		case 'S':
			splits = append(splits, Split{Category: f.value})
		case 'E':
			if len(splits) == 0 {
				return Transaction{}, &ValidationError{Line: f.line, Msg: "split memo ('E') outside of a split"}
			}
			splits[len(splits)-1].Memo = f.value
		case '$':
			if len(splits) == 0 {
				return Transaction{}, &ValidationError{Line: f.line, Msg: "split amount ('$') outside of a split"}
			}
			amount, err := ParseAmount(f.value, symbol)
			if err != nil {
				return Transaction{}, &ValidationError{Line: f.line, Msg: "invalid split amount", Err: err}
			}
			splits[len(splits)-1].Amount = amount
		default:
			values[f.code] = f.value
		}
	}

	rawDate, ok := values['D']
	if !ok {
		return Transaction{}, &ValidationError{Line: rec.line, Msg: "transaction has no date ('D') field"}
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return Transaction{}, &ValidationError{Line: rec.line, Msg: "invalid date", Err: err}
	}

	rawAmount, ok := values['U']
	if !ok {
		rawAmount, ok = values['T']
	}
	if !ok {
		return Transaction{}, &ValidationError{Line: rec.line, Msg: "transaction has no amount ('T' or 'U') field"}
	}
	amount, err := ParseAmount(rawAmount, symbol)
	if err != nil {
		return Transaction{}, &ValidationError{Line: rec.line, Msg: "invalid amount", Err: err}
	}

	return Transaction{
		Date:     date,
		Payee:    values['P'],
		Memo:     values['M'],
		Num:      values['N'],
		Amount:   amount,
		Category: values['L'],
		Splits:   splits,
	}, nil
}
