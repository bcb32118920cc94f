package render

import (
	"github.com/shopspring/decimal"

	"billforge/internal/domain"
)

// Price lists have no totals, tax or payments; they present the charge lines
// as a plain catalog of unit prices.

func priceListTable(doc domain.Document, withQty bool) Table {
	columns := []string{"Item", "Unit Price"}
	if withQty {
		columns = []string{"Item", "Pack Size", "Unit Price"}
	}
	t := Table{Columns: columns}
	for _, c := range doc.Charges() {
		if withQty {
			t.Rows = append(t.Rows, Row{Cells: []string{
				c.Description,
				decimal.NewFromInt(c.Quantity).String(),
				money(doc, c.UnitPrice),
			}})
			continue
		}
		t.Rows = append(t.Rows, Row{Cells: []string{c.Description, money(doc, c.UnitPrice)}})
	}
	return t
}

func priceListSimple(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:       doc.Kind,
		TemplateID: 1,
		Title:      "PRICE LIST",
		Accent:     accentFor(doc, opts, "#1f3a5f"),
		Preview:    opts.Preview,
		Scale:      scaleFor(opts),
		Meta:       []Field{{Label: "Effective", Value: formatDate(doc.Date)}},
		Parties:    []PartyBlock{partyBlock("", doc.Issuer)},
		Table:      priceListTable(doc, false),
	}
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	return a
}

func priceListCatalog(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:       doc.Kind,
		TemplateID: 2,
		Title:      doc.Issuer.Name + " Price List",
		Accent:     accentFor(doc, opts, "#7a5f0d"),
		Preview:    opts.Preview,
		Scale:      scaleFor(opts),
		Meta: []Field{
			{Label: "Reference", Value: doc.Number},
			{Label: "Effective", Value: formatDate(doc.Date)},
		},
		Parties: []PartyBlock{partyBlock("Contact", doc.Issuer)},
		Table:   priceListTable(doc, true),
	}
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	a.Footer = append(a.Footer, "Prices are subject to change without notice.")
	return a
}
