// Package words spells out monetary amounts in short-scale English using the
// major and minor unit names of the document's currency.
package words

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"billforge/internal/currency"
)

// ErrNegativeAmount is returned for negative inputs. The converter is
// display-only and never encodes sign; callers take the absolute value first.
var ErrNegativeAmount = errors.New("words: amount must not be negative")

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var scales = []string{"", "Thousand", "Million", "Billion"}

// maxDefined is one trillion; amounts at or above it are reduced modulo this
// bound and flagged with a leading marker rather than spelled incorrectly.
const maxDefined = int64(1_000_000_000_000)

// ToWords converts amount into its spelled-out form, e.g. 125050.75 NGN →
// "One Hundred and Twenty-Five Thousand, Fifty Naira, Seventy-Five Kobo".
// The minor clause is omitted when the minor part is zero; a zero amount still
// yields "Zero <MajorUnit>".
func ToWords(amount decimal.Decimal, code string) (string, error) {
	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}

	d := currency.Lookup(code)

	major := amount.IntPart()
	minor := int64(0)
	if d.MinorPerMajor > 1 {
		frac := amount.Sub(amount.Truncate(0))
		minor = frac.Mul(decimal.NewFromInt(d.MinorPerMajor)).Round(0).IntPart()
		if minor >= d.MinorPerMajor {
			// rounding the fraction carried into the major part
			major++
			minor -= d.MinorPerMajor
		}
	}

	truncated := false
	if major >= maxDefined {
		major %= maxDefined
		truncated = true
	}

	var b strings.Builder
	if truncated {
		b.WriteString("Over One Trillion, ")
	}
	b.WriteString(Integer(major))
	b.WriteString(" ")
	b.WriteString(d.MajorUnit)
	if minor > 0 && d.MinorUnit != "" {
		b.WriteString(", ")
		b.WriteString(Integer(minor))
		b.WriteString(" ")
		b.WriteString(d.MinorUnit)
	}
	return b.String(), nil
}

// Integer spells out a non-negative integer below one trillion.
func Integer(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		n = -n
	}

	groups := make([]int64, len(scales))
	for i := range groups {
		groups[i] = n % 1000
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		part := belowThousand(groups[i])
		if scales[i] != "" {
			part += " " + scales[i]
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func belowThousand(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += "-" + ones[n%10]
		}
		return s
	default:
		s := ones[n/100] + " Hundred"
		if rest := n % 100; rest != 0 {
			s += " and " + belowThousand(rest)
		}
		return s
	}
}
