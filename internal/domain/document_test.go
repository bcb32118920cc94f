package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleInvoice() Document {
	charges := []Charge{
		{ID: "l1", Description: "Widget", Quantity: 2, UnitPrice: dec("500")},
		{ID: "l2", Description: "Gadget", Quantity: 1, UnitPrice: dec("1000")},
	}
	return Document{
		ID:       "doc-1",
		UserID:   7,
		Kind:     KindInvoice,
		Number:   "INV-001",
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Customer: Party{Name: "Acme Ltd"},
		Issuer:   Party{Name: "BillForge Co"},
		Lines:    ComposeLines(charges, nil),
		TaxRate:  dec("5"),
		Currency: "USD",
	}
}

func TestDerive_ComputesTotals(t *testing.T) {
	d, anomalies := Derive(sampleInvoice())
	if len(anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %v", anomalies)
	}
	if !d.SubTotal.Equal(dec("2000")) {
		t.Fatalf("subtotal: expected 2000, got %s", d.SubTotal)
	}
	if !d.TaxAmount.Equal(dec("100")) {
		t.Fatalf("tax: expected 100, got %s", d.TaxAmount)
	}
	if !d.TotalAmount.Equal(dec("2100")) {
		t.Fatalf("total: expected 2100, got %s", d.TotalAmount)
	}
	if !d.RemainingBalance.Equal(dec("2100")) {
		t.Fatalf("balance: expected 2100, got %s", d.RemainingBalance)
	}
	if d.Locale != "en-US" {
		t.Fatalf("expected locale defaulted to en-US, got %q", d.Locale)
	}
}

func TestApplyPayment_ReconcilesBalance(t *testing.T) {
	d, _ := Derive(sampleInvoice())

	d, anomalies := ApplyPayment(d, PartialPayment{
		ID:     "p1",
		Amount: dec("1000"),
		Date:   time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	if len(anomalies) != 0 {
		t.Fatalf("unexpected anomalies: %v", anomalies)
	}

	if !d.SubTotal.Equal(dec("2000")) || !d.TotalAmount.Equal(dec("2100")) {
		t.Fatalf("payments must not shift subtotal or total, got %s / %s", d.SubTotal, d.TotalAmount)
	}
	if !d.AmountPaid.Equal(dec("1000")) {
		t.Fatalf("amount paid: expected 1000, got %s", d.AmountPaid)
	}
	if !d.RemainingBalance.Equal(dec("1100")) {
		t.Fatalf("balance: expected 1100, got %s", d.RemainingBalance)
	}
	if got := len(d.Deductions()); got != 1 {
		t.Fatalf("expected one deduction line, got %d", got)
	}
	if got := len(d.Charges()); got != 2 {
		t.Fatalf("charge lines must survive reconciliation, got %d", got)
	}
}

func TestApplyPayment_KeepsHistoryOrderedByDate(t *testing.T) {
	d, _ := Derive(sampleInvoice())

	later := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)

	d, _ = ApplyPayment(d, PartialPayment{ID: "p-late", Amount: dec("100"), Date: later})
	d, _ = ApplyPayment(d, PartialPayment{ID: "p-early", Amount: dec("200"), Date: earlier})

	if len(d.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(d.Payments))
	}
	if d.Payments[0].ID != "p-early" || d.Payments[1].ID != "p-late" {
		t.Fatalf("history not ordered by date: %s, %s", d.Payments[0].ID, d.Payments[1].ID)
	}
}

func TestDerive_FloorsOverpayment(t *testing.T) {
	src := sampleInvoice()
	src.Payments = []PartialPayment{{ID: "p1", Amount: dec("5000"), Date: time.Now()}}

	d, anomalies := Derive(src)
	if !d.RemainingBalance.IsZero() {
		t.Fatalf("balance should floor at zero, got %s", d.RemainingBalance)
	}
	if !hasAnomaly(anomalies, AnomalyOverpayment) {
		t.Fatalf("expected overpayment anomaly, got %v", anomalies)
	}
	if !d.DisplayTotal().IsZero() {
		t.Fatalf("display total should be zero when overpaid, got %s", d.DisplayTotal())
	}
}

func TestDerive_UnknownCurrencyAnomaly(t *testing.T) {
	src := sampleInvoice()
	src.Currency = "ZZZ"

	d, anomalies := Derive(src)
	if !hasAnomaly(anomalies, AnomalyUnknownCurrency) {
		t.Fatalf("expected unknown-currency anomaly, got %v", anomalies)
	}
	if !d.TotalAmount.Equal(dec("2100")) {
		t.Fatalf("totals must still derive with fallback currency, got %s", d.TotalAmount)
	}
}

func TestDerive_ClampsTaxRate(t *testing.T) {
	src := sampleInvoice()
	src.TaxRate = dec("150")

	d, anomalies := Derive(src)
	if !d.TaxRate.Equal(dec("100")) {
		t.Fatalf("rate: expected clamp to 100, got %s", d.TaxRate)
	}
	if !d.TaxAmount.Equal(dec("2000")) {
		t.Fatalf("tax at 100%%: expected 2000, got %s", d.TaxAmount)
	}
	if !hasAnomaly(anomalies, AnomalyRateClamped) {
		t.Fatalf("expected clamp anomaly, got %v", anomalies)
	}
}

func TestDerive_SkipsNegativeLines(t *testing.T) {
	src := sampleInvoice()
	charges := append(src.Charges(), Charge{ID: "bad", Description: "Refund?", Quantity: -1, UnitPrice: dec("100")})
	src.Lines = ComposeLines(charges, nil)

	d, anomalies := Derive(src)
	if !d.SubTotal.Equal(dec("2000")) {
		t.Fatalf("negative line must not change subtotal, got %s", d.SubTotal)
	}
	if !hasAnomaly(anomalies, AnomalyNegativeLine) {
		t.Fatalf("expected negative-line anomaly, got %v", anomalies)
	}
}

func TestDisplayTotal_IgnoresStaleStoredBalance(t *testing.T) {
	d, _ := Derive(sampleInvoice())
	d.AmountPaid = dec("600")
	d.RemainingBalance = dec("9999") // stale on purpose

	if got := d.DisplayTotal(); !got.Equal(dec("1500")) {
		t.Fatalf("display total must recompute from total and paid, got %s", got)
	}
}

func TestDisplayTotal_NoPayments(t *testing.T) {
	d, _ := Derive(sampleInvoice())
	if !d.DisplayTotal().Equal(d.TotalAmount) {
		t.Fatalf("without payments the display total is the grand total, got %s", d.DisplayTotal())
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []DocumentKind{KindInvoice, KindReceipt, KindQuotation, KindPriceList} {
		if !k.Valid() {
			t.Fatalf("expected %s to be valid", k)
		}
	}
	if DocumentKind("memo").Valid() {
		t.Fatal("unexpected kind accepted")
	}
}

func hasAnomaly(list []Anomaly, code string) bool {
	for _, a := range list {
		if a.Code == code {
			return true
		}
	}
	return false
}
