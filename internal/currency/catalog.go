package currency

import "strings"

// Descriptor describes one supported currency. The catalog is populated once
// at init and is read-only for the lifetime of the process.
type Descriptor struct {
	Code          string
	Symbol        string
	Locale        string
	MajorUnit     string
	MinorUnit     string
	MinorPerMajor int64
}

// Fallback is handed out for unrecognized codes. Currency codes arrive from
// free-text form fields, so lookups never fail hard.
var Fallback = Descriptor{
	Code:          "USD",
	Symbol:        "$",
	Locale:        "en-US",
	MajorUnit:     "Dollar",
	MinorUnit:     "Cent",
	MinorPerMajor: 100,
}

var catalog = map[string]Descriptor{
	"USD": {Code: "USD", Symbol: "$", Locale: "en-US", MajorUnit: "Dollar", MinorUnit: "Cent", MinorPerMajor: 100},
	"NGN": {Code: "NGN", Symbol: "₦", Locale: "en-NG", MajorUnit: "Naira", MinorUnit: "Kobo", MinorPerMajor: 100},
	"EUR": {Code: "EUR", Symbol: "€", Locale: "de-DE", MajorUnit: "Euro", MinorUnit: "Cent", MinorPerMajor: 100},
	"GBP": {Code: "GBP", Symbol: "£", Locale: "en-GB", MajorUnit: "Pound", MinorUnit: "Penny", MinorPerMajor: 100},
	"KES": {Code: "KES", Symbol: "KSh", Locale: "en-KE", MajorUnit: "Shilling", MinorUnit: "Cent", MinorPerMajor: 100},
	"GHS": {Code: "GHS", Symbol: "GH₵", Locale: "en-GH", MajorUnit: "Cedi", MinorUnit: "Pesewa", MinorPerMajor: 100},
	"ZAR": {Code: "ZAR", Symbol: "R", Locale: "en-ZA", MajorUnit: "Rand", MinorUnit: "Cent", MinorPerMajor: 100},
	"INR": {Code: "INR", Symbol: "₹", Locale: "en-IN", MajorUnit: "Rupee", MinorUnit: "Paisa", MinorPerMajor: 100},
	"CAD": {Code: "CAD", Symbol: "C$", Locale: "en-CA", MajorUnit: "Dollar", MinorUnit: "Cent", MinorPerMajor: 100},
	"AUD": {Code: "AUD", Symbol: "A$", Locale: "en-AU", MajorUnit: "Dollar", MinorUnit: "Cent", MinorPerMajor: 100},
	"JPY": {Code: "JPY", Symbol: "¥", Locale: "ja-JP", MajorUnit: "Yen", MinorUnit: "", MinorPerMajor: 1},
	"XOF": {Code: "XOF", Symbol: "CFA", Locale: "fr-SN", MajorUnit: "Franc", MinorUnit: "Centime", MinorPerMajor: 100},
	"UGX": {Code: "UGX", Symbol: "USh", Locale: "en-UG", MajorUnit: "Shilling", MinorUnit: "", MinorPerMajor: 1},
}

// Lookup resolves a currency code to its descriptor, falling back to the
// default dollar descriptor when the code is unknown.
func Lookup(code string) Descriptor {
	if d, ok := catalog[normalize(code)]; ok {
		return d
	}
	return Fallback
}

// Known reports whether code resolves to a real catalog entry. Callers use it
// to surface fallback substitutions as anomalies without changing behavior.
func Known(code string) bool {
	_, ok := catalog[normalize(code)]
	return ok
}

func SymbolFor(code string) string { return Lookup(code).Symbol }

func LocaleFor(code string) string { return Lookup(code).Locale }

// MinorDigits returns the number of decimal places implied by the currency's
// minor unit, e.g. 2 for cents, 0 for yen.
func (d Descriptor) MinorDigits() int32 {
	digits := int32(0)
	for n := d.MinorPerMajor; n > 1; n /= 10 {
		digits++
	}
	return digits
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
