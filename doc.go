// Package qif2ledger converts Quicken Interchange Format (QIF) exports into
// plain-text double-entry ledger files.
//
// The core functionalities include:
//   - QIF Decoding: splitting the line-oriented, field-tagged QIF records
//     into transactions (date, payee, amount, memo, category, splits),
//     tolerant of field order and of Quicken's date quirks.
//   - Balance Tracking: synthesizing an "Opening Balance" equity entry so
//     that register and balance reports over the converted file match the
//     account history implied by the QIF file.
//   - Ledger Encoding: rendering each transaction as a balanced double-entry
//     block, one explicit posting per category and one inferred posting to
//     the converted account.
//
// All monetary values are exact decimals; the conversion is a single
// deterministic pass that either produces the complete ledger text or fails
// with a typed error. This package serves as the foundational logic for the
// `q2l` command-line tool.
package qif2ledger
