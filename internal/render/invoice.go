package render

import "billforge/internal/domain"

// The invoice templates differ in layout and emphasis only; their data
// guarantees are identical and come from the shared builders in common.go.

func invoiceClassic(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:          doc.Kind,
		TemplateID:    1,
		Title:         "INVOICE",
		Accent:        accentFor(doc, opts, "#1f3a5f"),
		Preview:       opts.Preview,
		Scale:         scaleFor(opts),
		Meta:          metaFields(doc, "Invoice No.", "Due Date"),
		Parties:       []PartyBlock{partyBlock("From", doc.Issuer), partyBlock("Bill To", doc.Customer)},
		Table:         itemsTable(doc, true),
		Totals:        totalsBlock(doc),
		AmountInWords: amountInWords(doc),
	}
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	a.Footer = append(a.Footer, "Thank you for your business.")
	return a
}

func invoiceModern(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:       doc.Kind,
		TemplateID: 2,
		Title:      "Invoice",
		Accent:     accentFor(doc, opts, "#0d7a5f"),
		Preview:    opts.Preview,
		Scale:      scaleFor(opts),
		// customer first, issuer in the footer area
		Meta:          metaFields(doc, "No.", "Payment Due"),
		Parties:       []PartyBlock{partyBlock("Billed To", doc.Customer)},
		Table:         itemsTable(doc, false),
		Totals:        totalsBlock(doc),
		AmountInWords: amountInWords(doc),
	}
	issuer := partyBlock("Issued By", doc.Issuer)
	a.Footer = append(a.Footer, issuer.Lines...)
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	return a
}

func invoiceMinimal(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:       doc.Kind,
		TemplateID: 3,
		Title:      "Invoice " + doc.Number,
		Accent:     accentFor(doc, opts, "#222222"),
		Preview:    opts.Preview,
		Scale:      scaleFor(opts),
		Meta:       metaFields(doc, "Reference", "Due"),
		Parties:    []PartyBlock{partyBlock("To", doc.Customer)},
		Table:      itemsTable(doc, false),
		Totals:     totalsBlock(doc),
	}
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	return a
}
