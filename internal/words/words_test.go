package words

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustWords(t *testing.T, amount, code string) string {
	t.Helper()
	s, err := ToWords(dec(amount), code)
	if err != nil {
		t.Fatalf("ToWords(%s, %s): %v", amount, code, err)
	}
	return s
}

func TestToWords_Zero(t *testing.T) {
	if got := mustWords(t, "0", "NGN"); got != "Zero Naira" {
		t.Fatalf("expected %q, got %q", "Zero Naira", got)
	}
}

func TestToWords_WholeAmount(t *testing.T) {
	got := mustWords(t, "100", "NGN")
	if got != "One Hundred Naira" {
		t.Fatalf("expected %q, got %q", "One Hundred Naira", got)
	}
	if strings.Contains(got, "Kobo") {
		t.Fatalf("no minor clause expected for whole amount, got %q", got)
	}
}

func TestToWords_MajorAndMinor(t *testing.T) {
	got := mustWords(t, "100.5", "NGN")
	if !strings.Contains(got, "Naira") || !strings.Contains(got, "Kobo") {
		t.Fatalf("expected both major and minor clauses, got %q", got)
	}
	if !strings.Contains(got, "Fifty Kobo") {
		t.Fatalf("expected Fifty Kobo, got %q", got)
	}
}

func TestToWords_FullDecomposition(t *testing.T) {
	got := mustWords(t, "125050.75", "NGN")
	want := "One Hundred and Twenty-Five Thousand, Fifty Naira, Seventy-Five Kobo"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToWords_NoMinorUnitCurrency(t *testing.T) {
	got := mustWords(t, "250.75", "JPY")
	if got != "Two Hundred and Fifty Yen" {
		t.Fatalf("expected fraction dropped for JPY, got %q", got)
	}
}

func TestToWords_MinorRoundingCarry(t *testing.T) {
	// .999 rounds up to a full major unit
	got := mustWords(t, "1.999", "USD")
	if got != "Two Dollar" {
		t.Fatalf("expected carry into major part, got %q", got)
	}
}

func TestToWords_RejectsNegative(t *testing.T) {
	_, err := ToWords(dec("-1"), "USD")
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestToWords_BeyondDefinedRange(t *testing.T) {
	got := mustWords(t, "1000000000000", "USD")
	if !strings.HasPrefix(got, "Over One Trillion") {
		t.Fatalf("expected explicit out-of-range marker, got %q", got)
	}
}

func TestInteger(t *testing.T) {
	cases := map[int64]string{
		0:          "Zero",
		7:          "Seven",
		13:         "Thirteen",
		20:         "Twenty",
		42:         "Forty-Two",
		100:        "One Hundred",
		101:        "One Hundred and One",
		999:        "Nine Hundred and Ninety-Nine",
		1000:       "One Thousand",
		12345:      "Twelve Thousand, Three Hundred and Forty-Five",
		1000000:    "One Million",
		2000003:    "Two Million, Three",
		5600000001: "Five Billion, Six Hundred Million, One",
	}
	for n, want := range cases {
		if got := Integer(n); got != want {
			t.Fatalf("Integer(%d): expected %q, got %q", n, want, got)
		}
	}
}
