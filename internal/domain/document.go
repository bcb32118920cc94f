package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"billforge/internal/calc"
)

type DocumentKind string

const (
	KindInvoice   DocumentKind = "invoice"
	KindReceipt   DocumentKind = "receipt"
	KindQuotation DocumentKind = "quotation"
	KindPriceList DocumentKind = "price_list"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case KindInvoice, KindReceipt, KindQuotation, KindPriceList:
		return true
	}
	return false
}

// DocumentLine is a closed sum: either a billable Charge or a Deduction
// projected from a recorded partial payment. Calculation consumes charges
// only; renderers show deductions as visually distinct negative rows.
type DocumentLine interface {
	isLine()
}

type Charge struct {
	ID          string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

func (Charge) isLine() {}

// LineTotal is always quantity × unit price; it is derived, never stored
// independently.
func (c Charge) LineTotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(c.Quantity))
}

type Deduction struct {
	PaymentID   string
	Description string
	Amount      decimal.Decimal // positive; rendered as a negative row
	Date        time.Time
}

func (Deduction) isLine() {}

// PartialPayment is one entry of a document's append-only payment history,
// kept ordered by date ascending.
type PartialPayment struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Line projects the payment into the document's line list for rendering.
func (p PartialPayment) Line() Deduction {
	return Deduction{
		PaymentID:   p.ID,
		Description: p.Description,
		Amount:      p.Amount,
		Date:        p.Date,
	}
}

type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Document is the canonical shape every renderer consumes. It is built once
// from form input and re-derived as a whole when a payment is recorded; item
// lists are never mutated in place.
type Document struct {
	ID       string
	UserID   int64
	Kind     DocumentKind
	Number   string
	Date     time.Time
	DueDate  *time.Time
	Customer Party
	Issuer   Party

	Lines    []DocumentLine
	Payments []PartialPayment

	SubTotal         decimal.Decimal
	TaxRate          decimal.Decimal
	TaxAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	AmountPaid       decimal.Decimal
	RemainingBalance decimal.Decimal

	Currency    string
	Locale      string
	AccentColor string
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Charges returns only the billable lines, in document order.
func (d Document) Charges() []Charge {
	var out []Charge
	for _, l := range d.Lines {
		if c, ok := l.(Charge); ok {
			out = append(out, c)
		}
	}
	return out
}

// Deductions returns the projected payment lines, in document order.
func (d Document) Deductions() []Deduction {
	var out []Deduction
	for _, l := range d.Lines {
		if dd, ok := l.(Deduction); ok {
			out = append(out, dd)
		}
	}
	return out
}

// HasPayments reports whether any partial payment has been recorded.
func (d Document) HasPayments() bool {
	return d.AmountPaid.IsPositive()
}

// DisplayTotal is the figure a renderer labels as due. When payments exist it
// is always recomputed from TotalAmount and AmountPaid, so a stale stored
// balance can never leak into output.
func (d Document) DisplayTotal() decimal.Decimal {
	if !d.HasPayments() {
		return d.TotalAmount
	}
	due, _ := calc.BalanceDue(d.TotalAmount, d.AmountPaid)
	return due
}
