package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"billforge/internal/domain"
	"billforge/internal/render"
	"billforge/internal/service"
)

type DocumentService interface {
	Create(ctx context.Context, userID int64, in service.CreateDocumentInput) (domain.Document, []domain.Anomaly, error)
	Get(ctx context.Context, id string, userID int64) (domain.Document, error)
	List(ctx context.Context, userID int64, kind string) ([]domain.Document, error)
	RecordPayment(ctx context.Context, documentID string, userID int64, amount decimal.Decimal, date time.Time, description string) (domain.Document, []domain.Anomaly, error)
}

type RenderStarter interface {
	StartRender(ctx context.Context, documentID string, userID int64, templateID int, format string, opts render.Options) (string, error)
}

type ExportLister interface {
	GetExports(ctx context.Context, userID int64) ([]interface{}, error)
	GetExport(ctx context.Context, exportID string, userID int64) (interface{}, error)
}

type Handler struct {
	documents DocumentService
	renders   RenderStarter
	exports   ExportLister
}

func NewHandler(documents DocumentService, renders RenderStarter, exports ExportLister) *Handler {
	return &Handler{
		documents: documents,
		renders:   renders,
		exports:   exports,
	}
}

func (h *Handler) InitRouter() *chi.Mux {
	return h.InitRouterWithAuth(nil)
}

func (h *Handler) InitRouterWithAuth(authMiddleware func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(60*time.Second),
	)

	if authMiddleware != nil {
		r.Use(authMiddleware)
	}

	r.Route("/documents", func(r chi.Router) {
		r.Post("/", h.createDocument)
		r.Get("/", h.listDocuments)
		r.Get("/{document_id}", h.getDocument)
		r.Post("/{document_id}/payments", h.recordPayment)
		r.Post("/{document_id}/render", h.startRender)
	})

	r.Get("/templates/{kind}", h.listTemplates)

	r.Route("/exports", func(r chi.Router) {
		r.Get("/", h.listExports)
		r.Get("/{export_id}", h.getExport)
	})

	return r
}
