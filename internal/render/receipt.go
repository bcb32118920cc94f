package render

import "billforge/internal/domain"

func receiptClassic(doc domain.Document, opts Options) Artifact {
	a := Artifact{
		Kind:          doc.Kind,
		TemplateID:    1,
		Title:         "RECEIPT",
		Accent:        accentFor(doc, opts, "#5f1f3a"),
		Preview:       opts.Preview,
		Scale:         scaleFor(opts),
		Meta:          metaFields(doc, "Receipt No.", "Valid Until"),
		Parties:       []PartyBlock{partyBlock("From", doc.Issuer), partyBlock("Received From", doc.Customer)},
		Table:         itemsTable(doc, true),
		Totals:        totalsBlock(doc),
		AmountInWords: amountInWords(doc),
		Footer:        []string{"This receipt confirms payment received."},
	}
	if doc.Notes != "" {
		a.Footer = append([]string{doc.Notes}, a.Footer...)
	}
	return a
}

// receiptCompact is a narrow till-style layout; same rows, no party detail
// beyond names.
func receiptCompact(doc domain.Document, opts Options) Artifact {
	parties := []PartyBlock{}
	if doc.Issuer.Name != "" {
		parties = append(parties, PartyBlock{Label: "Seller", Lines: []string{doc.Issuer.Name}})
	}
	if doc.Customer.Name != "" {
		parties = append(parties, PartyBlock{Label: "Customer", Lines: []string{doc.Customer.Name}})
	}
	return Artifact{
		Kind:       doc.Kind,
		TemplateID: 2,
		Title:      "Receipt " + doc.Number,
		Accent:     accentFor(doc, opts, "#333333"),
		Preview:    opts.Preview,
		Scale:      scaleFor(opts),
		Meta:       metaFields(doc, "No.", "Valid Until"),
		Parties:    parties,
		Table:      itemsTable(doc, false),
		Totals:     totalsBlock(doc),
	}
}
