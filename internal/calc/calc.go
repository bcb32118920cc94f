// Package calc holds the arithmetic core shared by every document kind:
// subtotal, tax, grand total and partial-payment balance. All operations are
// pure and keep full decimal precision; rounding to minor units happens only
// when an amount is formatted for display.
package calc

import "github.com/shopspring/decimal"

// Item is the minimal shape the subtotal needs from a charge line.
type Item struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// Subtotal sums quantity × unit price over items. Items with a negative
// quantity or unit price are skipped and counted; negative values are only
// legal on payment deductions, which never reach this function.
func Subtotal(items []Item) (sum decimal.Decimal, skipped int) {
	sum = zero
	for _, it := range items {
		if it.Quantity < 0 || it.UnitPrice.IsNegative() {
			skipped++
			continue
		}
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return sum, skipped
}

// ClampRate forces rate into [0, 100] and reports whether it had to.
func ClampRate(rate decimal.Decimal) (decimal.Decimal, bool) {
	if rate.IsNegative() {
		return zero, true
	}
	if rate.GreaterThan(hundred) {
		return hundred, true
	}
	return rate, false
}

// TaxAmount computes subtotal × rate / 100 with rate clamped to [0, 100].
func TaxAmount(subtotal, rate decimal.Decimal) decimal.Decimal {
	rate, _ = ClampRate(rate)
	if rate.IsZero() {
		return zero
	}
	return subtotal.Mul(rate).Div(hundred)
}

// GrandTotal is subtotal plus tax.
func GrandTotal(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// BalanceDue is total minus paid, floored at zero. The floor guards against
// upstream overpayment bugs; floored reports when it fired so callers can log
// the anomaly instead of accepting it silently.
func BalanceDue(total, paid decimal.Decimal) (due decimal.Decimal, floored bool) {
	due = total.Sub(paid)
	if due.IsNegative() {
		return zero, true
	}
	return due, false
}
