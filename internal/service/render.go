package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"billforge/internal/clients"
	"billforge/internal/domain"
	"billforge/internal/export"
	"billforge/internal/render"
	"billforge/internal/repository"
)

const (
	exportTTL    = 30 * time.Minute
	exportSetKey = "export_ids"

	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ExportStatus tracks one render job from start to downloadable artifact.
// It lives in redis under its Key for the export TTL.
type ExportStatus struct {
	Key        string                 `json:"key"`
	Type       string                 `json:"type"`
	UserID     int64                  `json:"user_id"`
	DocumentID string                 `json:"document_id"`
	TemplateID int                    `json:"template_id"`
	Format     string                 `json:"format"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
	Progress   float64                `json:"progress"`
	FileURL    *string                `json:"file_url"`
	Error      *string                `json:"error,omitempty"`
	Created    time.Time              `json:"created"`
}

type DocumentGetter interface {
	GetByID(ctx context.Context, id string) (domain.Document, error)
}

// ArtifactStore persists an encoded artifact and returns its download URL.
// Local disk and S3 both satisfy it.
type ArtifactStore interface {
	Save(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
}

// RenderService runs the render-and-share pipeline: template lookup, pure
// render, artifact encoding, storage upload, progress notification. The
// engine stays synchronous; only this pipeline is asynchronous.
type RenderService struct {
	docs  DocumentGetter
	redis *clients.RedisClient
	store ArtifactStore
	ws    *clients.WebSocketClient
}

func NewRenderService(docs DocumentGetter, redis *clients.RedisClient, store ArtifactStore, ws *clients.WebSocketClient) *RenderService {
	return &RenderService{docs: docs, redis: redis, store: store, ws: ws}
}

// StartRender validates the request synchronously (document ownership,
// template id, format) and runs the encoding asynchronously. A template id
// missing from the registry is a caller bug and fails here, before any job
// state exists.
func (s *RenderService) StartRender(ctx context.Context, documentID string, userID int64, templateID int, format string, opts render.Options) (string, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if doc.UserID != userID {
		return "", repository.ErrNotFound
	}

	registry, err := render.ForKind(doc.Kind)
	if err != nil {
		return "", err
	}
	desc, err := registry.Get(templateID)
	if err != nil {
		return "", err
	}

	if format != FormatPDF && format != FormatXLSX {
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	exportID := fmt.Sprintf("exports:%s", uuid.NewString())
	status := &ExportStatus{
		Key:        exportID,
		Type:       string(doc.Kind),
		UserID:     userID,
		DocumentID: documentID,
		TemplateID: templateID,
		Format:     format,
		Progress:   0,
		Created:    time.Now(),
	}
	_ = s.saveStatus(ctx, status)

	go s.runRender(context.Background(), status, doc, desc, opts)

	return exportID, nil
}

func (s *RenderService) runRender(ctx context.Context, status *ExportStatus, doc domain.Document, desc render.Descriptor, opts render.Options) {
	artifact := desc.Render(doc, opts)
	s.progress(ctx, status, 25, "rendering")

	var (
		data        []byte
		contentType string
		err         error
	)
	switch status.Format {
	case FormatXLSX:
		data, err = export.XLSX(artifact)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		data, err = export.PDF(artifact)
		contentType = "application/pdf"
	}
	if err != nil {
		s.fail(ctx, status, fmt.Sprintf("encode failed: %v", err))
		return
	}
	s.progress(ctx, status, 75, "encoding")

	fileName := fmt.Sprintf("%s_%s_%s.%s",
		doc.Kind, doc.Number, time.Now().Format("20060102_150405"), status.Format)

	url, err := s.store.Save(ctx, fileName, data, contentType)
	if err != nil {
		s.fail(ctx, status, fmt.Sprintf("save artifact failed: %v", err))
		return
	}

	status.FileURL = &url
	status.Progress = 100
	_ = s.saveStatus(ctx, status)
	if s.ws != nil {
		_ = s.ws.NotifyExportProgress(ctx, status.UserID, status.Key, 100, "ready")
		_ = s.ws.NotifyExportComplete(ctx, status.UserID, status.Key, url, fileName)
	}
}

func (s *RenderService) progress(ctx context.Context, status *ExportStatus, p float64, stage string) {
	status.Progress = p
	_ = s.saveStatus(ctx, status)
	if s.ws != nil {
		_ = s.ws.NotifyExportProgress(ctx, status.UserID, status.Key, p, stage)
	}
}

func (s *RenderService) fail(ctx context.Context, status *ExportStatus, msg string) {
	log.Printf("[RENDER] export %s: %s", status.Key, msg)
	status.Error = &msg
	status.Progress = 100
	_ = s.saveStatus(ctx, status)
	if s.ws != nil {
		_ = s.ws.NotifyExportFailed(ctx, status.UserID, status.Key, msg)
	}
}

func (s *RenderService) saveStatus(ctx context.Context, st *ExportStatus) error {
	if s.redis == nil {
		return nil
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, st.Key, string(data), exportTTL); err != nil {
		return err
	}
	return s.redis.SAdd(ctx, exportSetKey, st.Key)
}
