package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"billforge/internal/render"
	"billforge/internal/repository"
	"billforge/internal/transport/auth"
)

func (h *Handler) startRender(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		ErrorUnauthorized(w, "Unauthorized")
		return
	}

	req, err := ValidateRenderRequest(r)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			ErrorBadRequest(w, verr.Error())
			return
		}
		ErrorBadRequest(w, "invalid JSON")
		return
	}

	opts := render.Options{Preview: req.Preview, AccentColor: req.AccentColor}
	exportID, err := h.renders.StartRender(
		r.Context(), chi.URLParam(r, "document_id"), userID, req.TemplateID, req.Format, opts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ErrorNotFound(w, "document not found")
			return
		}
		var unknownTemplate *render.UnknownTemplateError
		if errors.As(err, &unknownTemplate) {
			ErrorUnprocessable(w, unknownTemplate.Error())
			return
		}
		log.Printf("[HTTP] startRender error: %v", err)
		ErrorInternal(w, "failed to start render")
		return
	}

	SuccessAccepted(w, "Render queued", map[string]interface{}{"export_id": exportID})
}
