package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"billforge/internal/domain"
)

var ErrNotFound = errors.New("not found")

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create stores a fully derived document together with its charge lines in
// one transaction. Totals are stored as computed by the engine; the database
// never derives anything.
func (r *DocumentRepository) Create(ctx context.Context, d domain.Document) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents
			(id, user_id, kind, number, doc_date, due_date,
			 customer_name, customer_address, customer_phone, customer_email,
			 issuer_name, issuer_address, issuer_phone,
			 sub_total, tax_rate, tax_amount, total_amount, amount_paid, remaining_balance,
			 currency, locale, accent_color, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)`,
		d.ID, d.UserID, string(d.Kind), d.Number, d.Date, d.DueDate,
		d.Customer.Name, d.Customer.Address, d.Customer.Phone, d.Customer.Email,
		d.Issuer.Name, d.Issuer.Address, d.Issuer.Phone,
		d.SubTotal, d.TaxRate, d.TaxAmount, d.TotalAmount, d.AmountPaid, d.RemainingBalance,
		d.Currency, d.Locale, d.AccentColor, d.Notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	for pos, c := range d.Charges() {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO document_items (id, document_id, description, quantity, unit_price, position)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			c.ID, d.ID, c.Description, c.Quantity, c.UnitPrice, pos,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID loads a document with its charge lines and payment history, lines
// composed in render order.
func (r *DocumentRepository) GetByID(ctx context.Context, id string) (domain.Document, error) {
	var d domain.Document
	var kind string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, kind, number, doc_date, due_date,
		       customer_name, customer_address, customer_phone, customer_email,
		       issuer_name, issuer_address, issuer_phone,
		       sub_total, tax_rate, tax_amount, total_amount, amount_paid, remaining_balance,
		       currency, locale, accent_color, notes, created_at, updated_at
		FROM documents WHERE id = $1`, id,
	).Scan(
		&d.ID, &d.UserID, &kind, &d.Number, &d.Date, &d.DueDate,
		&d.Customer.Name, &d.Customer.Address, &d.Customer.Phone, &d.Customer.Email,
		&d.Issuer.Name, &d.Issuer.Address, &d.Issuer.Phone,
		&d.SubTotal, &d.TaxRate, &d.TaxAmount, &d.TotalAmount, &d.AmountPaid, &d.RemainingBalance,
		&d.Currency, &d.Locale, &d.AccentColor, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, ErrNotFound
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("select document: %w", err)
	}
	d.Kind = domain.DocumentKind(kind)

	charges, err := r.itemsFor(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	payments, err := paymentsFor(ctx, r.db, id)
	if err != nil {
		return domain.Document{}, err
	}

	d.Payments = payments
	d.Lines = domain.ComposeLines(charges, payments)
	return d, nil
}

// ListByUser returns document summaries (no lines) newest first, optionally
// filtered by kind.
func (r *DocumentRepository) ListByUser(ctx context.Context, userID int64, kind string) ([]domain.Document, error) {
	query := `
		SELECT id, kind, number, doc_date, customer_name, total_amount, amount_paid,
		       remaining_balance, currency, created_at
		FROM documents WHERE user_id = $1`
	args := []any{userID}
	if kind != "" {
		query += " AND kind = $2"
		args = append(args, kind)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		var k string
		if err := rows.Scan(
			&d.ID, &k, &d.Number, &d.Date, &d.Customer.Name,
			&d.TotalAmount, &d.AmountPaid, &d.RemainingBalance, &d.Currency, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		d.Kind = domain.DocumentKind(k)
		d.UserID = userID
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateTotals persists re-derived totals after a payment was recorded.
func (r *DocumentRepository) UpdateTotals(ctx context.Context, d domain.Document) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE documents
		SET amount_paid = $2, remaining_balance = $3, updated_at = $4
		WHERE id = $1`,
		d.ID, d.AmountPaid, d.RemainingBalance, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update totals: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) itemsFor(ctx context.Context, documentID string) ([]domain.Charge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, quantity, unit_price
		FROM document_items WHERE document_id = $1 ORDER BY position`, documentID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	var out []domain.Charge
	for rows.Next() {
		var c domain.Charge
		if err := rows.Scan(&c.ID, &c.Description, &c.Quantity, &c.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
