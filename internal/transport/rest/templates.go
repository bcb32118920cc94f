package rest

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"billforge/internal/domain"
	"billforge/internal/render"
	"billforge/internal/transport/auth"
)

// listTemplates returns the template ids visible to the caller's tier for one
// document kind. Ids returned here are the only valid inputs to a render
// request.
func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.GetUserID(r.Context()); err != nil {
		ErrorUnauthorized(w, "Unauthorized")
		return
	}

	kind := domain.DocumentKind(chi.URLParam(r, "kind"))
	registry, err := render.ForKind(kind)
	if err != nil {
		ErrorBadRequest(w, "invalid kind")
		return
	}

	tier := render.Tier(auth.GetTier(r.Context()))
	available := registry.Available(tier)

	out := make([]map[string]interface{}, 0, len(available))
	for _, d := range available {
		out = append(out, map[string]interface{}{
			"id":   d.ID,
			"name": d.Name,
			"tier": d.Tier,
		})
	}

	log.Printf("[HTTP] %d %s templates visible to tier %q", len(out), kind, tier)
	Success(w, "", out)
}
