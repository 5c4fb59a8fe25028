package qif2ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// field is one tagged QIF line: a one-character code paired with its raw
// string value. Fields are ephemeral, consumed by the transaction builder.
type field struct {
	code  byte
	value string
	line  int // 1-based line number in the input
}

// record is one group of fields, terminated by a lone '^' in the input.
type record struct {
	fields []field
	line   int // line number of the first field of the group
}

// accountTypes lists the '!Type:' headers this converter handles. Investment
// and credit card sections use different field semantics and are rejected
// rather than guessed.
var accountTypes = map[string]bool{
	"Bank": true,
	"Cash": true,
}

// scanRecords splits the raw QIF text into records.
//
// Blank lines are skipped. A '!Type:Bank' or '!Type:Cash' header is
// recognized and skipped; any other header ('!Type:Invst', '!Account'
// lists, or a second type section) fails the scan. A group still open at
// end of file is a ParseError: flushing it would amount to guessing where
// the last transaction ends.
func scanRecords(r io.Reader) ([]record, error) {
	var (
		records []record
		cur     record
		sawType bool
		n       int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case line[0] == '!':
			if len(cur.fields) > 0 {
				return nil, &ParseError{Line: n, Msg: fmt.Sprintf("header %q inside an open record group", line)}
			}
			typ, ok := strings.CutPrefix(line, "!Type:")
			if !ok {
				return nil, &ValidationError{Line: n, Msg: fmt.Sprintf("unsupported section header %q", line)}
			}
			typ = strings.TrimSpace(typ)
			if sawType {
				return nil, &ValidationError{Line: n, Msg: "multiple account sections in one file are not supported"}
			}
			if !accountTypes[typ] {
				return nil, &ValidationError{Line: n, Msg: fmt.Sprintf("unsupported account type %q", typ)}
			}
			sawType = true

		case strings.TrimSpace(line) == "^":
			if len(cur.fields) > 0 {
				records = append(records, cur)
			}
			cur = record{}

		default:
			if len(cur.fields) == 0 {
				cur.line = n
			}
			cur.fields = append(cur.fields, field{code: line[0], value: line[1:], line: n})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: n, Msg: fmt.Sprintf("cannot read input: %v", err)}
	}
	if len(cur.fields) > 0 {
		return nil, &ParseError{Line: cur.line, Msg: "record group not terminated by '^' before end of file"}
	}
	return records, nil
}
