package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"billforge/internal/calc"
	"billforge/internal/currency"
)

// Anomaly flags a fail-soft substitution or a clamped invariant violation.
// Anomalies never interrupt the flow; they exist so upstream data-entry bugs
// stay observable.
type Anomaly struct {
	Code   string
	Detail string
}

const (
	AnomalyUnknownCurrency = "unknown_currency"
	AnomalyNegativeLine    = "negative_line_skipped"
	AnomalyRateClamped     = "tax_rate_clamped"
	AnomalyOverpayment     = "overpayment_floored"
)

func (a Anomaly) String() string {
	return a.Code + ": " + a.Detail
}

// Derive recomputes every stored total of d from its charges, tax rate and
// payment history, returning the derived document and any anomalies. It is
// the single reconciliation path used both at creation and after recording a
// payment; d itself is not modified.
func Derive(d Document) (Document, []Anomaly) {
	var anomalies []Anomaly

	if !currency.Known(d.Currency) {
		anomalies = append(anomalies, Anomaly{
			Code:   AnomalyUnknownCurrency,
			Detail: fmt.Sprintf("code %q resolved to fallback %s", d.Currency, currency.Fallback.Code),
		})
	}
	if d.Locale == "" {
		d.Locale = currency.LocaleFor(d.Currency)
	}

	charges := d.Charges()
	items := make([]calc.Item, len(charges))
	for i, c := range charges {
		items[i] = calc.Item{Quantity: c.Quantity, UnitPrice: c.UnitPrice}
	}

	sub, skipped := calc.Subtotal(items)
	if skipped > 0 {
		anomalies = append(anomalies, Anomaly{
			Code:   AnomalyNegativeLine,
			Detail: fmt.Sprintf("%d charge(s) with negative quantity or price excluded from subtotal", skipped),
		})
	}

	rate, clamped := calc.ClampRate(d.TaxRate)
	if clamped {
		anomalies = append(anomalies, Anomaly{
			Code:   AnomalyRateClamped,
			Detail: fmt.Sprintf("tax rate %s clamped to %s", d.TaxRate, rate),
		})
	}

	tax := calc.TaxAmount(sub, rate)
	total := calc.GrandTotal(sub, tax)

	paid := decimal.Zero
	for _, p := range d.Payments {
		paid = paid.Add(p.Amount)
	}

	due, floored := calc.BalanceDue(total, paid)
	if floored {
		anomalies = append(anomalies, Anomaly{
			Code:   AnomalyOverpayment,
			Detail: fmt.Sprintf("amount paid %s exceeds total %s, balance floored at zero", paid, total),
		})
	}

	d.SubTotal = sub
	d.TaxRate = rate
	d.TaxAmount = tax
	d.TotalAmount = total
	d.AmountPaid = paid
	d.RemainingBalance = due
	d.Lines = ComposeLines(charges, d.Payments)

	return d, anomalies
}

// ApplyPayment returns a copy of d with p appended to its history and all
// totals re-derived. The history stays ordered by payment date ascending.
func ApplyPayment(d Document, p PartialPayment) (Document, []Anomaly) {
	history := make([]PartialPayment, 0, len(d.Payments)+1)
	history = append(history, d.Payments...)
	history = append(history, p)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	d.Payments = history
	d.UpdatedAt = time.Now()
	return Derive(d)
}

// ComposeLines lays out charges first, then one deduction row per payment in
// history order, so renderers see payments after the goods they offset.
func ComposeLines(charges []Charge, payments []PartialPayment) []DocumentLine {
	lines := make([]DocumentLine, 0, len(charges)+len(payments))
	for _, c := range charges {
		lines = append(lines, c)
	}
	for _, p := range payments {
		lines = append(lines, p.Line())
	}
	return lines
}
