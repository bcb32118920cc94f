package rest

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"billforge/internal/repository"
	"billforge/internal/transport/auth"
)

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		ErrorUnauthorized(w, "Unauthorized")
		return
	}

	req, err := ValidateRecordPaymentRequest(r)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			ErrorBadRequest(w, verr.Error())
			return
		}
		ErrorBadRequest(w, "invalid JSON")
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	doc, anomalies, err := h.documents.RecordPayment(
		r.Context(), chi.URLParam(r, "document_id"), userID, req.Amount, date, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorNotFound(w, "document not found")
			return
		}
		log.Printf("[HTTP] recordPayment error: %v", err)
		ErrorInternal(w, "failed to record payment")
		return
	}

	SuccessWithWarnings(w, "Payment recorded", documentPayload(doc), warningStrings(anomalies))
}
