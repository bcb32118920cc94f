package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billforge/internal/domain"
	"billforge/internal/repository"
)

type DocumentRepo interface {
	Create(ctx context.Context, d domain.Document) error
	GetByID(ctx context.Context, id string) (domain.Document, error)
	ListByUser(ctx context.Context, userID int64, kind string) ([]domain.Document, error)
	UpdateTotals(ctx context.Context, d domain.Document) error
}

type PaymentRepo interface {
	Append(ctx context.Context, documentID string, p domain.PartialPayment) error
}

type ItemInput struct {
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

type CreateDocumentInput struct {
	Kind        domain.DocumentKind
	Number      string
	Date        time.Time
	DueDate     *time.Time
	Customer    domain.Party
	Issuer      domain.Party
	Items       []ItemInput
	TaxRate     decimal.Decimal
	Currency    string
	Locale      string
	AccentColor string
	Notes       string
}

// DocumentService owns the document lifecycle: build once from form input,
// re-derive when a payment is recorded. All arithmetic is delegated to the
// engine; this layer only persists results and logs anomalies.
type DocumentService struct {
	docs            DocumentRepo
	payments        PaymentRepo
	defaultCurrency string
}

func NewDocumentService(docs DocumentRepo, payments PaymentRepo, defaultCurrency string) *DocumentService {
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &DocumentService{docs: docs, payments: payments, defaultCurrency: defaultCurrency}
}

func (s *DocumentService) Create(ctx context.Context, userID int64, in CreateDocumentInput) (domain.Document, []domain.Anomaly, error) {
	if !in.Kind.Valid() {
		return domain.Document{}, nil, fmt.Errorf("invalid document kind %q", in.Kind)
	}

	currencyCode := in.Currency
	if currencyCode == "" {
		currencyCode = s.defaultCurrency
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	charges := make([]domain.Charge, len(in.Items))
	for i, it := range in.Items {
		charges[i] = domain.Charge{
			ID:          uuid.NewString(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}

	now := time.Now()
	doc := domain.Document{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        in.Kind,
		Number:      in.Number,
		Date:        date,
		DueDate:     in.DueDate,
		Customer:    in.Customer,
		Issuer:      in.Issuer,
		Lines:       domain.ComposeLines(charges, nil),
		TaxRate:     in.TaxRate,
		Currency:    currencyCode,
		Locale:      in.Locale,
		AccentColor: in.AccentColor,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	derived, anomalies := domain.Derive(doc)
	logAnomalies(derived.ID, anomalies)

	if err := s.docs.Create(ctx, derived); err != nil {
		return domain.Document{}, nil, fmt.Errorf("persist document: %w", err)
	}

	return derived, anomalies, nil
}

func (s *DocumentService) Get(ctx context.Context, id string, userID int64) (domain.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}
	if doc.UserID != userID {
		return domain.Document{}, repository.ErrNotFound
	}
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, userID int64, kind string) ([]domain.Document, error) {
	return s.docs.ListByUser(ctx, userID, kind)
}

// RecordPayment appends a partial payment to the document history and
// persists the re-derived totals. The engine floors the balance at zero on
// overpayment; the anomaly is returned to the caller as a warning.
func (s *DocumentService) RecordPayment(ctx context.Context, documentID string, userID int64, amount decimal.Decimal, date time.Time, description string) (domain.Document, []domain.Anomaly, error) {
	if !amount.IsPositive() {
		return domain.Document{}, nil, fmt.Errorf("payment amount must be positive, got %s", amount)
	}

	doc, err := s.Get(ctx, documentID, userID)
	if err != nil {
		return domain.Document{}, nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}
	payment := domain.PartialPayment{
		ID:          uuid.NewString(),
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	derived, anomalies := domain.ApplyPayment(doc, payment)
	logAnomalies(derived.ID, anomalies)

	if err := s.payments.Append(ctx, documentID, payment); err != nil {
		return domain.Document{}, nil, fmt.Errorf("persist payment: %w", err)
	}
	if err := s.docs.UpdateTotals(ctx, derived); err != nil {
		return domain.Document{}, nil, fmt.Errorf("persist totals: %w", err)
	}

	return derived, anomalies, nil
}

func logAnomalies(documentID string, anomalies []domain.Anomaly) {
	for _, a := range anomalies {
		log.Printf("[DOC] document %s anomaly %s", documentID, a)
	}
}
