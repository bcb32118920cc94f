package currency

import "testing"

func TestLookup_KnownCode(t *testing.T) {
	d := Lookup("NGN")
	if d.Symbol != "₦" || d.MajorUnit != "Naira" || d.MinorUnit != "Kobo" {
		t.Fatalf("unexpected NGN descriptor: %+v", d)
	}
}

func TestLookup_NormalizesCode(t *testing.T) {
	if d := Lookup(" ngn "); d.Code != "NGN" {
		t.Fatalf("expected lowercase/padded code to resolve, got %+v", d)
	}
}

func TestLookup_UnknownCodeFallsBack(t *testing.T) {
	d := Lookup("ZZZ")
	if d.Symbol != "$" || d.Locale != "en-US" {
		t.Fatalf("expected dollar fallback for unknown code, got %+v", d)
	}
}

func TestKnown(t *testing.T) {
	if !Known("USD") {
		t.Fatal("USD should be known")
	}
	if Known("ZZZ") {
		t.Fatal("ZZZ should not be known")
	}
}

func TestMinorDigits(t *testing.T) {
	if got := Lookup("USD").MinorDigits(); got != 2 {
		t.Fatalf("expected 2 minor digits for USD, got %d", got)
	}
	if got := Lookup("JPY").MinorDigits(); got != 0 {
		t.Fatalf("expected 0 minor digits for JPY, got %d", got)
	}
}

func TestProjections(t *testing.T) {
	if SymbolFor("GBP") != "£" {
		t.Fatalf("unexpected GBP symbol %q", SymbolFor("GBP"))
	}
	if LocaleFor("NGN") != "en-NG" {
		t.Fatalf("unexpected NGN locale %q", LocaleFor("NGN"))
	}
}
