package qif2ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string // rendered with the "$" symbol
		err      bool
	}{
		{"-175.00", "$-175.00", false},
		{"175", "$175.00", false},
		{"-1,570.73", "$-1570.73", false},
		{"1,234,567.8", "$1234567.80", false},
		{"0", "$0.00", false},
		{"", "", true},
		{"12..5", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input, "$")
			if (err != nil) != tt.err {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got.String() != tt.expected {
				t.Errorf("ParseAmount(%q) = %q, want %q", tt.input, got.String(), tt.expected)
			}
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, _ := ParseAmount("-107.88", "$")
	b, _ := ParseAmount("-1,570.73", "$")

	sum := a.Add(b)
	if want := decimal.RequireFromString("-1678.61"); !sum.Decimal().Equal(want) {
		t.Errorf("Add() = %v, want %v", sum.Decimal(), want)
	}
	if got, want := sum.Neg().String(), "$1678.61"; got != want {
		t.Errorf("Neg().String() = %q, want %q", got, want)
	}

	var zero Money
	if !zero.IsZero() {
		t.Errorf("zero Money is not IsZero()")
	}
	// the "" symbol of the zero value is weak
	if got, want := zero.Add(a).String(), "$-107.88"; got != want {
		t.Errorf("zero.Add(a).String() = %q, want %q", got, want)
	}
}

func TestResolveSymbol(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"", "$"},
		{"USD", "$"},
		{"usd", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"$", "$"},
		{"kr", "kr"}, // not an ISO code, used verbatim
	}
	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			if got := ResolveSymbol(tt.currency); got != tt.want {
				t.Errorf("ResolveSymbol(%q) = %q, want %q", tt.currency, got, tt.want)
			}
		})
	}
}
