package qif2ledger

import "fmt"

// ParseError reports a structural problem in the QIF record stream: an
// unsupported header, a group left open at end of file, or a line that is
// not a field line at all. The whole conversion aborts, no partial output.
type ParseError struct {
	Line int // 1-based line number in the QIF input, 0 when unknown
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("qif parse error on line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("qif parse error: %s", e.Msg)
}

// ValidationError reports a transaction group that is structurally fine but
// semantically incomplete or invalid: a missing date or amount, or a value
// that does not parse. Same fail-fast policy as ParseError; silently
// dropping or mis-amounting a financial transaction is worse than refusing
// to convert.
type ValidationError struct {
	Line int // 1-based line number of the offending group or field
	Msg  string
	Err  error // underlying cause, if any
}

func (e *ValidationError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("qif validation error on line %d: %s", e.Line, msg)
	}
	return fmt.Sprintf("qif validation error: %s", msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }
