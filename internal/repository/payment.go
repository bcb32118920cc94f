package repository

import (
	"context"
	"database/sql"
	"fmt"

	"billforge/internal/domain"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Append records one partial payment against a document. History is
// append-only; payments are never updated or deleted.
func (r *PaymentRepository) Append(ctx context.Context, documentID string, p domain.PartialPayment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO partial_payments (id, document_id, amount, paid_at, description)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, documentID, p.Amount, p.Date, p.Description,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByDocument returns the payment history ordered by payment date
// ascending.
func (r *PaymentRepository) ListByDocument(ctx context.Context, documentID string) ([]domain.PartialPayment, error) {
	return paymentsFor(ctx, r.db, documentID)
}

func paymentsFor(ctx context.Context, db *sql.DB, documentID string) ([]domain.PartialPayment, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, amount, paid_at, description
		FROM partial_payments WHERE document_id = $1 ORDER BY paid_at ASC`, documentID)
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	defer rows.Close()

	var out []domain.PartialPayment
	for rows.Next() {
		var p domain.PartialPayment
		if err := rows.Scan(&p.ID, &p.Amount, &p.Date, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
