package render

import (
	"time"

	"github.com/shopspring/decimal"

	"billforge/internal/currency"
	"billforge/internal/domain"
	"billforge/internal/words"
)

const (
	fullScale    = 1.0
	previewScale = 0.35

	dateLayout = "02 Jan 2006"
)

// Shared building blocks keeping every template on the same contract: tax
// line only when the rate is positive, payment rows as distinct deductions,
// dual totals only when something was paid, optional fields omitted rather
// than printed as placeholder text.

func scaleFor(opts Options) float64 {
	if opts.Preview {
		return previewScale
	}
	return fullScale
}

func accentFor(doc domain.Document, opts Options, fallback string) string {
	if opts.AccentColor != "" {
		return opts.AccentColor
	}
	if doc.AccentColor != "" {
		return doc.AccentColor
	}
	return fallback
}

func money(doc domain.Document, amount decimal.Decimal) string {
	return currency.Format(amount, doc.Currency, doc.Locale)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func metaFields(doc domain.Document, numberLabel, dueLabel string) []Field {
	fields := []Field{
		{Label: numberLabel, Value: doc.Number},
		{Label: "Date", Value: formatDate(doc.Date)},
	}
	if doc.DueDate != nil {
		fields = append(fields, Field{Label: dueLabel, Value: formatDate(*doc.DueDate)})
	}
	return fields
}

func partyBlock(label string, p domain.Party) PartyBlock {
	block := PartyBlock{Label: label}
	for _, line := range []string{p.Name, p.Address, p.Phone, p.Email} {
		if line != "" {
			block.Lines = append(block.Lines, line)
		}
	}
	return block
}

// itemsTable lays out one row per charge followed by one deduction row per
// payment. Deduction amounts are shown negated; they never feed any total the
// table itself displays.
func itemsTable(doc domain.Document, numbered bool) Table {
	columns := []string{"Description", "Qty", "Unit Price", "Amount"}
	if numbered {
		columns = append([]string{"#"}, columns...)
	}

	t := Table{Columns: columns}
	n := 0
	for _, line := range doc.Lines {
		switch l := line.(type) {
		case domain.Charge:
			n++
			cells := []string{
				l.Description,
				decimal.NewFromInt(l.Quantity).String(),
				money(doc, l.UnitPrice),
				money(doc, l.LineTotal()),
			}
			if numbered {
				cells = append([]string{decimal.NewFromInt(int64(n)).String()}, cells...)
			}
			t.Rows = append(t.Rows, Row{Cells: cells})
		case domain.Deduction:
			desc := "Payment"
			if l.Description != "" {
				desc = "Payment: " + l.Description
			}
			cells := []string{desc, "", "", "-" + money(doc, l.Amount)}
			if numbered {
				cells = append([]string{""}, cells...)
			}
			t.Rows = append(t.Rows, Row{Cells: cells, Deduction: true})
		}
	}
	return t
}

// totalsBlock renders either a single total line or the original total /
// amount paid / balance due triple, never both phrasings for one document.
func totalsBlock(doc domain.Document) []TotalLine {
	lines := []TotalLine{{Label: "Subtotal", Value: money(doc, doc.SubTotal)}}

	if doc.TaxRate.IsPositive() {
		lines = append(lines, TotalLine{
			Label: "Tax (" + doc.TaxRate.String() + "%)",
			Value: money(doc, doc.TaxAmount),
		})
	}

	if doc.HasPayments() {
		lines = append(lines,
			TotalLine{Label: "Original Total", Value: money(doc, doc.TotalAmount)},
			TotalLine{Label: "Amount Paid", Value: "-" + money(doc, doc.AmountPaid), Deduction: true},
			TotalLine{Label: "Balance Due", Value: money(doc, doc.DisplayTotal()), Emphasis: true},
		)
	} else {
		lines = append(lines, TotalLine{Label: "Total", Value: money(doc, doc.TotalAmount), Emphasis: true})
	}
	return lines
}

func amountInWords(doc domain.Document) string {
	s, err := words.ToWords(doc.DisplayTotal(), doc.Currency)
	if err != nil {
		return ""
	}
	return s
}
