package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Javohir0411/global-school/internal/app/models"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (student_id, payment_date, payment_amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, payment.StudentID, payment.Date, payment.Amount).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("error creating payment: %w", err)
	}

	return nil
}

// GetByID retrieves a payment by ID; returns nil when no row matches
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := `
		SELECT id, student_id, payment_date, payment_amount
		FROM payments
		WHERE id = $1
	`

	var payment models.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.StudentID,
		&payment.Date,
		&payment.Amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving payment: %w", err)
	}

	return &payment, nil
}

// GetAll retrieves all payments
func (r *PaymentRepository) GetAll(ctx context.Context) ([]*models.Payment, error) {
	query := `
		SELECT id, student_id, payment_date, payment_amount
		FROM payments
		ORDER BY payment_date DESC, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.StudentID,
			&payment.Date,
			&payment.Amount,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// Update updates an existing payment
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	query := `
		UPDATE payments
		SET payment_date = $1, payment_amount = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, payment.Date, payment.Amount, payment.ID)
	if err != nil {
		return fmt.Errorf("error updating payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete deletes a payment by ID
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM payments WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
