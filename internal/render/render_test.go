package render

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"billforge/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func docFor(t *testing.T, kind domain.DocumentKind, taxRate string, payments []domain.PartialPayment) domain.Document {
	t.Helper()
	charges := []domain.Charge{
		{ID: "l1", Description: "Consulting", Quantity: 2, UnitPrice: dec("500")},
		{ID: "l2", Description: "Hosting", Quantity: 1, UnitPrice: dec("1000")},
	}
	src := domain.Document{
		ID:       "doc-1",
		Kind:     kind,
		Number:   "DOC-042",
		Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Customer: domain.Party{Name: "Acme Ltd", Email: "billing@acme.test"},
		Issuer:   domain.Party{Name: "BillForge Co", Phone: "+1 555 0100"},
		Lines:    domain.ComposeLines(charges, payments),
		Payments: payments,
		TaxRate:  dec(taxRate),
		Currency: "USD",
	}
	derived, anomalies := domain.Derive(src)
	if len(anomalies) != 0 {
		t.Fatalf("fixture produced anomalies: %v", anomalies)
	}
	return derived
}

func artifactStrings(a Artifact) []string {
	out := []string{a.Title, a.Accent, a.AmountInWords}
	for _, f := range a.Meta {
		out = append(out, f.Label, f.Value)
	}
	for _, p := range a.Parties {
		out = append(out, p.Label)
		out = append(out, p.Lines...)
	}
	out = append(out, a.Table.Columns...)
	for _, r := range a.Table.Rows {
		out = append(out, r.Cells...)
	}
	for _, l := range a.Totals {
		out = append(out, l.Label, l.Value)
	}
	out = append(out, a.Footer...)
	return out
}

func forEachTemplate(t *testing.T, fn func(t *testing.T, r *Registry, d Descriptor)) {
	for _, r := range allRegistries() {
		for _, d := range r.Available(TierPaid) {
			r, d := r, d
			t.Run(string(r.Kind())+"/"+d.Name, func(t *testing.T) {
				fn(t, r, d)
			})
		}
	}
}

func TestRender_NoPlaceholderText(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, r *Registry, d Descriptor) {
		doc := docFor(t, r.Kind(), "5", nil)
		doc.Notes = ""
		a := d.Render(doc, Options{})
		for _, s := range artifactStrings(a) {
			lower := strings.ToLower(s)
			if strings.Contains(lower, "null") || strings.Contains(lower, "undefined") {
				t.Fatalf("placeholder text leaked into output: %q", s)
			}
		}
	})
}

func TestRender_TaxLineOnlyWhenRatePositive(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, r *Registry, d Descriptor) {
		if r.Kind() == domain.KindPriceList {
			t.Skip("price lists carry no totals")
		}

		withTax := d.Render(docFor(t, r.Kind(), "5", nil), Options{})
		if !hasTotalLabel(withTax, "Tax (5%)") {
			t.Fatalf("expected tax line at 5%%, totals: %+v", withTax.Totals)
		}

		noTax := d.Render(docFor(t, r.Kind(), "0", nil), Options{})
		for _, l := range noTax.Totals {
			if strings.HasPrefix(l.Label, "Tax") {
				t.Fatalf("tax line present at zero rate: %+v", l)
			}
		}
	})
}

func TestRender_DualTotalsOnlyWhenPaid(t *testing.T) {
	payments := []domain.PartialPayment{{
		ID:     "p1",
		Amount: dec("1000"),
		Date:   time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	}}

	forEachTemplate(t, func(t *testing.T, r *Registry, d Descriptor) {
		if r.Kind() == domain.KindPriceList {
			t.Skip("price lists carry no totals")
		}

		unpaid := d.Render(docFor(t, r.Kind(), "5", nil), Options{})
		if !hasTotalLabel(unpaid, "Total") {
			t.Fatalf("expected single total line, totals: %+v", unpaid.Totals)
		}
		for _, label := range []string{"Original Total", "Amount Paid", "Balance Due"} {
			if hasTotalLabel(unpaid, label) {
				t.Fatalf("dual-total label %q present without payments", label)
			}
		}

		paid := d.Render(docFor(t, r.Kind(), "5", payments), Options{})
		for _, label := range []string{"Original Total", "Amount Paid", "Balance Due"} {
			if !hasTotalLabel(paid, label) {
				t.Fatalf("missing %q with a recorded payment, totals: %+v", label, paid.Totals)
			}
		}
		if hasTotalLabel(paid, "Total") {
			t.Fatal("single-total phrasing present alongside dual totals")
		}
	})
}

func TestRender_DeductionRowsAreDistinct(t *testing.T) {
	payments := []domain.PartialPayment{{
		ID:          "p1",
		Amount:      dec("1000"),
		Date:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Description: "Bank transfer",
	}}

	forEachTemplate(t, func(t *testing.T, r *Registry, d Descriptor) {
		if r.Kind() == domain.KindPriceList {
			t.Skip("price lists carry no payment rows")
		}

		a := d.Render(docFor(t, r.Kind(), "5", payments), Options{})
		var deductions int
		for _, row := range a.Table.Rows {
			if !row.Deduction {
				continue
			}
			deductions++
			joined := strings.Join(row.Cells, " ")
			if !strings.Contains(joined, "Payment") || !strings.Contains(joined, "-") {
				t.Fatalf("deduction row not visually negated: %v", row.Cells)
			}
		}
		if deductions != 1 {
			t.Fatalf("expected exactly one deduction row, got %d", deductions)
		}
	})
}

func TestRender_PreviewChangesScaleOnly(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, r *Registry, d Descriptor) {
		doc := docFor(t, r.Kind(), "5", nil)
		full := d.Render(doc, Options{})
		preview := d.Render(doc, Options{Preview: true})

		if !preview.Preview || preview.Scale >= full.Scale {
			t.Fatalf("preview must shrink scale: full %v, preview %v", full.Scale, preview.Scale)
		}
		if !reflect.DeepEqual(full.Table, preview.Table) {
			t.Fatal("preview altered table content")
		}
		if !reflect.DeepEqual(full.Totals, preview.Totals) {
			t.Fatal("preview altered totals content")
		}
		if full.AmountInWords != preview.AmountInWords {
			t.Fatal("preview altered amount in words")
		}
	})
}

func TestRender_AccentOverride(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, r *Registry, d Descriptor) {
		doc := docFor(t, r.Kind(), "5", nil)
		a := d.Render(doc, Options{AccentColor: "#aabbcc"})
		if a.Accent != "#aabbcc" {
			t.Fatalf("expected accent override, got %q", a.Accent)
		}
		doc.AccentColor = "#112233"
		a = d.Render(doc, Options{})
		if a.Accent != "#112233" {
			t.Fatalf("expected document accent, got %q", a.Accent)
		}
	})
}

func TestRegistryRender_UnknownID(t *testing.T) {
	doc := docFor(t, domain.KindInvoice, "5", nil)
	_, err := Invoices().Render(doc, 404, Options{})
	if err == nil {
		t.Fatal("expected error for unknown template id")
	}
}

func hasTotalLabel(a Artifact, label string) bool {
	for _, l := range a.Totals {
		if l.Label == label {
			return true
		}
	}
	return false
}
