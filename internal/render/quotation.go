package render

import "billforge/internal/domain"

func quotationStandard(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:       doc.Kind,
		TemplateID: 1,
		Title:      "QUOTATION",
		Accent:     accentFor(doc, opts, "#1f5f3a"),
		Preview:    opts.Preview,
		Scale:      scaleFor(opts),
		Meta:       metaFields(doc, "Quotation No.", "Valid Until"),
		Parties:    []PartyBlock{partyBlock("From", doc.Issuer), partyBlock("Prepared For", doc.Customer)},
		Table:      itemsTable(doc, true),
		Totals:     totalsBlock(doc),
		Footer:     []string{"Prices are valid until the date stated above."},
	}
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	return a
}

func quotationDetailed(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:          doc.Kind,
		TemplateID:    2,
		Title:         "Quotation " + doc.Number,
		Accent:        accentFor(doc, opts, "#3a1f5f"),
		Preview:       opts.Preview,
		Scale:         scaleFor(opts),
		Meta:          metaFields(doc, "Reference", "Offer Expires"),
		Parties:       []PartyBlock{partyBlock("Prepared By", doc.Issuer), partyBlock("Client", doc.Customer)},
		Table:         itemsTable(doc, true),
		Totals:        totalsBlock(doc),
		AmountInWords: amountInWords(doc),
	}
	if doc.Notes != "" {
		a.Footer = append(a.Footer, doc.Notes)
	}
	a.Footer = append(a.Footer, "This quotation is not an invoice and carries no payment obligation.")
	return a
}
