package qif2ledger

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const exampleQIF = "!Type:Bank\n" +
	"D06/19/2005\n" +
	"PTech Software, LLC\n" +
	"MParking expense\n" +
	"LReimbursement:Work Expenses\n" +
	"T-175.00\n" +
	"^\n"

func TestConvert(t *testing.T) {
	got, err := Convert(exampleQIF, "Assets:Checking", "$")
	if err != nil {
		t.Fatalf("Convert() returned an unexpected error: %v", err)
	}

	want := "2005/06/19 Opening Balance\n" +
		"    Equity  $175.00\n" +
		"    Assets:Checking\n" +
		"\n" +
		"2005/06/19 Tech Software, LLC\n" +
		"    ;Parking expense\n" +
		"    Reimbursement:Work Expenses  $-175.00\n" +
		"    Assets:Checking\n"
	if got != want {
		t.Errorf("Convert() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n  \n", "!Type:Bank\n"} {
		got, err := Convert(input, "Assets:Checking", "$")
		if err != nil {
			t.Errorf("Convert(%q) returned an unexpected error: %v", input, err)
		}
		if got != "" {
			t.Errorf("Convert(%q) = %q, want empty output", input, got)
		}
	}
}

func TestConvert_MissingAmountNoPartialOutput(t *testing.T) {
	qif := "D06/19/2005\nT-1.00\n^\nD06/20/2005\nPNo Amount\n^\n"
	got, err := Convert(qif, "Assets:Checking", "$")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Convert() error = %v, want a *ValidationError", err)
	}
	if got != "" {
		t.Errorf("Convert() produced partial output %q, want none", got)
	}
}

func TestConvert_Idempotent(t *testing.T) {
	first, err := Convert(exampleQIF, "Assets:Checking", "$")
	if err != nil {
		t.Fatalf("Convert() returned an unexpected error: %v", err)
	}
	second, err := Convert(exampleQIF, "Assets:Checking", "$")
	if err != nil {
		t.Fatalf("Convert() returned an unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Convert() is not deterministic.\nFirst:\n%s\nSecond:\n%s", first, second)
	}
}

func TestConvert_DefaultSymbol(t *testing.T) {
	got, err := Convert(exampleQIF, "Assets:Checking", "")
	if err != nil {
		t.Fatalf("Convert() returned an unexpected error: %v", err)
	}
	if !strings.Contains(got, "$-175.00") {
		t.Errorf("Convert() with empty symbol did not default to %q:\n%s", DefaultSymbol, got)
	}
}

func TestConvert_CustomSymbol(t *testing.T) {
	got, err := Convert(exampleQIF, "Assets:Checking", "€")
	if err != nil {
		t.Fatalf("Convert() returned an unexpected error: %v", err)
	}
	if !strings.Contains(got, "Reimbursement:Work Expenses  €-175.00") {
		t.Errorf("Convert() did not use the custom symbol:\n%s", got)
	}
}

// TestConvert_AmountRoundTrip re-parses the amounts out of the rendered
// ledger text and checks they reproduce the original decimal values, with
// the opening balance closing the sum to zero.
func TestConvert_AmountRoundTrip(t *testing.T) {
	qif := "!Type:Bank\n" +
		"D11/ 8'16\nU-107.88\nT-107.88\nPVERIZON\nLUtilities\n^\n" +
		"D11/ 9'16\nU-1,570.73\nT-1,570.73\nPChecking\nLVisa\n^\n" +
		"D11/10'16\nT2,000\nPEmployer\nLIncome:Salary\n^\n"

	out, err := Convert(qif, "Assets:Checking", "$")
	if err != nil {
		t.Fatalf("Convert() returned an unexpected error: %v", err)
	}

	re := regexp.MustCompile(`\$(-?\d+\.\d{2})`)
	matches := re.FindAllStringSubmatch(out, -1)
	if len(matches) != 4 {
		t.Fatalf("found %d amounts in output, want 4 (opening + 3):\n%s", len(matches), out)
	}

	want := []string{"-321.39", "-107.88", "-1570.73", "2000.00"}
	sum := decimal.Zero
	for i, m := range matches {
		got := decimal.RequireFromString(m[1])
		if !got.Equal(decimal.RequireFromString(want[i])) {
			t.Errorf("amount %d = %s, want %s", i, got, want[i])
		}
		sum = sum.Add(got)
	}
	if !sum.IsZero() {
		t.Errorf("rendered amounts sum to %s, want 0", sum)
	}
}
