package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders amount with the currency's symbol and the locale's grouping
// and decimal conventions. Rounding to the currency's minor-unit precision
// happens here and nowhere earlier; upstream arithmetic stays at full
// precision. An unparseable locale degrades to symbol + plain decimal rather
// than an error.
func Format(amount decimal.Decimal, code, locale string) string {
	d := Lookup(code)
	if locale == "" {
		locale = d.Locale
	}

	digits := int(d.MinorDigits())
	rounded := amount.Round(d.MinorDigits())

	tag, err := language.Parse(locale)
	if err != nil {
		return d.Symbol + rounded.StringFixed(d.MinorDigits())
	}

	f, _ := rounded.Float64()

	p := message.NewPrinter(tag)
	return d.Symbol + p.Sprint(number.Decimal(f,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}
