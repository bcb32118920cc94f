package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"billforge/internal/domain"
	"billforge/internal/service"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type partyPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type itemPayload struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type createDocumentRequest struct {
	Kind        string          `json:"kind"`
	Number      string          `json:"number"`
	Date        *time.Time      `json:"date"`
	DueDate     *time.Time      `json:"due_date"`
	Customer    partyPayload    `json:"customer"`
	Issuer      partyPayload    `json:"issuer"`
	Items       []itemPayload   `json:"items"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Currency    string          `json:"currency"`
	Locale      string          `json:"locale"`
	AccentColor string          `json:"accent_color"`
	Notes       string          `json:"notes"`
}

// ValidateCreateDocumentRequest parses and validates the document creation
// payload. Zero-valued numeric fields and missing optional strings are
// accepted; the engine substitutes safe defaults downstream.
func ValidateCreateDocumentRequest(r *http.Request) (*service.CreateDocumentInput, error) {
	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return nil, err
	}

	kind := domain.DocumentKind(req.Kind)
	if !kind.Valid() {
		return nil, &ValidationError{Field: "kind", Message: "must be one of invoice, receipt, quotation, price_list"}
	}
	if req.Number == "" {
		return nil, &ValidationError{Field: "number", Message: "number is required"}
	}
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "at least one item is required"}
	}
	if req.Customer.Name == "" && kind != domain.KindPriceList {
		return nil, &ValidationError{Field: "customer.name", Message: "customer name is required"}
	}
	if req.Issuer.Name == "" {
		return nil, &ValidationError{Field: "issuer.name", Message: "issuer name is required"}
	}

	in := &service.CreateDocumentInput{
		Kind:        kind,
		Number:      req.Number,
		DueDate:     req.DueDate,
		Customer:    party(req.Customer),
		Issuer:      party(req.Issuer),
		TaxRate:     req.TaxRate,
		Currency:    req.Currency,
		Locale:      req.Locale,
		AccentColor: req.AccentColor,
		Notes:       req.Notes,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, service.ItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return in, nil
}

type recordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"`
	Description string          `json:"description"`
}

func ValidateRecordPaymentRequest(r *http.Request) (*recordPaymentRequest, error) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	return &req, nil
}

type renderRequest struct {
	TemplateID  int    `json:"template_id"`
	Format      string `json:"format"`
	Preview     bool   `json:"preview"`
	AccentColor string `json:"accent_color"`
}

func ValidateRenderRequest(r *http.Request) (*renderRequest, error) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return nil, err
	}
	if req.TemplateID <= 0 {
		return nil, &ValidationError{Field: "template_id", Message: "template_id is required"}
	}
	if req.Format == "" {
		req.Format = service.FormatPDF
	}
	if req.Format != service.FormatPDF && req.Format != service.FormatXLSX {
		return nil, &ValidationError{Field: "format", Message: "format must be pdf or xlsx"}
	}
	return &req, nil
}

func party(p partyPayload) domain.Party {
	return domain.Party{Name: p.Name, Address: p.Address, Phone: p.Phone, Email: p.Email}
}
