package rest

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"billforge/internal/currency"
	"billforge/internal/domain"
	"billforge/internal/repository"
	"billforge/internal/transport/auth"
	"billforge/internal/words"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		ErrorUnauthorized(w, "Unauthorized")
		return
	}

	in, err := ValidateCreateDocumentRequest(r)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			ErrorBadRequest(w, verr.Error())
			return
		}
		ErrorBadRequest(w, "invalid JSON")
		return
	}

	doc, anomalies, err := h.documents.Create(r.Context(), userID, *in)
	if err != nil {
		log.Printf("[HTTP] createDocument error: %v", err)
		ErrorInternal(w, "failed to create document")
		return
	}

	SuccessCreated(w, "Document created", documentPayload(doc), warningStrings(anomalies))
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		ErrorUnauthorized(w, "Unauthorized")
		return
	}

	doc, err := h.documents.Get(r.Context(), chi.URLParam(r, "document_id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorNotFound(w, "document not found")
			return
		}
		log.Printf("[HTTP] getDocument error: %v", err)
		ErrorInternal(w, "failed to load document")
		return
	}

	Success(w, "", documentPayload(doc))
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		ErrorUnauthorized(w, "Unauthorized")
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind != "" && !domain.DocumentKind(kind).Valid() {
		ErrorBadRequest(w, "invalid kind")
		return
	}

	docs, err := h.documents.List(r.Context(), userID, kind)
	if err != nil {
		log.Printf("[HTTP] listDocuments error: %v", err)
		ErrorInternal(w, "failed to list documents")
		return
	}

	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, map[string]interface{}{
			"id":            d.ID,
			"kind":          d.Kind,
			"number":        d.Number,
			"date":          d.Date.Format(time.RFC3339),
			"customer_name": d.Customer.Name,
			"total_amount":  d.TotalAmount.String(),
			"display_total": currency.Format(d.DisplayTotal(), d.Currency, d.Locale),
			"currency":      d.Currency,
		})
	}

	Success(w, "", out)
}

// documentPayload serializes a document with raw decimal figures alongside
// their locale-formatted forms, so API consumers never re-implement the
// formatting rules.
func documentPayload(d domain.Document) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(d.Lines))
	for _, line := range d.Lines {
		switch l := line.(type) {
		case domain.Charge:
			items = append(items, map[string]interface{}{
				"id":          l.ID,
				"type":        "charge",
				"description": l.Description,
				"quantity":    l.Quantity,
				"unit_price":  l.UnitPrice.String(),
				"line_total":  l.LineTotal().String(),
			})
		case domain.Deduction:
			items = append(items, map[string]interface{}{
				"payment_id":  l.PaymentID,
				"type":        "deduction",
				"description": l.Description,
				"amount":      l.Amount.Neg().String(),
				"date":        l.Date.Format(time.RFC3339),
			})
		}
	}

	payments := make([]map[string]interface{}, 0, len(d.Payments))
	for _, p := range d.Payments {
		payments = append(payments, map[string]interface{}{
			"id":          p.ID,
			"amount":      p.Amount.String(),
			"date":        p.Date.Format(time.RFC3339),
			"description": p.Description,
		})
	}

	payload := map[string]interface{}{
		"id":                d.ID,
		"kind":              d.Kind,
		"number":            d.Number,
		"date":              d.Date.Format(time.RFC3339),
		"customer":          partyMap(d.Customer),
		"issuer":            partyMap(d.Issuer),
		"items":             items,
		"payments":          payments,
		"sub_total":         d.SubTotal.String(),
		"tax_rate":          d.TaxRate.String(),
		"tax_amount":        d.TaxAmount.String(),
		"total_amount":      d.TotalAmount.String(),
		"amount_paid":       d.AmountPaid.String(),
		"remaining_balance": d.RemainingBalance.String(),
		"display_total":     currency.Format(d.DisplayTotal(), d.Currency, d.Locale),
		"currency":          d.Currency,
		"locale":            d.Locale,
		"notes":             d.Notes,
	}
	if d.DueDate != nil {
		payload["due_date"] = d.DueDate.Format(time.RFC3339)
	}
	if d.AccentColor != "" {
		payload["accent_color"] = d.AccentColor
	}
	if inWords, err := words.ToWords(d.DisplayTotal(), d.Currency); err == nil {
		payload["amount_in_words"] = inWords
	}
	return payload
}

func partyMap(p domain.Party) map[string]interface{} {
	m := map[string]interface{}{"name": p.Name}
	if p.Address != "" {
		m["address"] = p.Address
	}
	if p.Phone != "" {
		m["phone"] = p.Phone
	}
	if p.Email != "" {
		m["email"] = p.Email
	}
	return m
}

func warningStrings(anomalies []domain.Anomaly) []string {
	if len(anomalies) == 0 {
		return nil
	}
	out := make([]string, len(anomalies))
	for i, a := range anomalies {
		out[i] = a.String()
	}
	return out
}
