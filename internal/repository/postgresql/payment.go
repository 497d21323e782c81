package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/payment"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.Repository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `
	p.id, p.booking_id, p.client_id, p.amount_cents, p.currency, p.method,
	p.gateway, p.gateway_intent_id, p.gateway_charge_id, p.status,
	p.refunded_cents, p.failure_reason, p.description, p.paid_at,
	p.created_at, p.updated_at,
	b.booking_number
`

func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.ClientID,
		&p.AmountCents,
		&p.Currency,
		&p.Method,
		&p.Gateway,
		&p.GatewayIntentID,
		&p.GatewayChargeID,
		&p.Status,
		&p.RefundedCents,
		&p.FailureReason,
		&p.Description,
		&p.PaidAt,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.BookingNumber,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implements payment.Repository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (
			booking_id, client_id, amount_cents, currency, method, gateway,
			gateway_intent_id, gateway_charge_id, status, refunded_cents,
			failure_reason, description, paid_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	created := *p
	err := q.QueryRow(ctx, query,
		p.BookingID,
		p.ClientID,
		p.AmountCents,
		p.Currency,
		p.Method,
		p.Gateway,
		p.GatewayIntentID,
		p.GatewayChargeID,
		p.Status,
		p.RefundedCents,
		p.FailureReason,
		p.Description,
		p.PaidAt,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetByID implements payment.Repository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE p.id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetByIntentID implements payment.Repository.
func (r *paymentRepositoryImpl) GetByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE p.gateway_intent_id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, intentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByClient implements payment.Repository.
func (r *paymentRepositoryImpl) ListByClient(ctx context.Context, clientID string, filter payment.HistoryFilter) ([]payment.Payment, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE p.client_id = $1`
	args := []interface{}{clientID}
	argPos := 2

	if filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payments p`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id` + where +
		fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// ListByBooking implements payment.Repository.
func (r *paymentRepositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE p.booking_id = $1
		ORDER BY p.created_at
	`

	rows, err := q.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]payment.Payment, error) {
	payments := make([]payment.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// Update implements payment.Repository.
func (r *paymentRepositoryImpl) Update(ctx context.Context, p *payment.Payment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payments
		SET status = $1, gateway_intent_id = $2, gateway_charge_id = $3,
			refunded_cents = $4, failure_reason = $5, paid_at = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		p.Status,
		p.GatewayIntentID,
		p.GatewayChargeID,
		p.RefundedCents,
		p.FailureReason,
		p.PaidAt,
		p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

// CashMovements implements payment.Repository.
func (r *paymentRepositoryImpl) CashMovements(ctx context.Context, start, end time.Time) ([]payment.CashMovement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT method, COUNT(*),
			   COALESCE(SUM(amount_cents), 0)::float8 / 100,
			   COALESCE(SUM(refunded_cents), 0)::float8 / 100
		FROM payments
		WHERE status IN ($1, $2, $3)
		  AND paid_at BETWEEN $4 AND $5
		GROUP BY method
		ORDER BY method
	`

	rows, err := q.Query(ctx, query,
		payment.StatusCompleted,
		payment.StatusRefunded,
		payment.StatusPartiallyRefunded,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]payment.CashMovement, 0)
	for rows.Next() {
		var m payment.CashMovement
		if err := rows.Scan(&m.Method, &m.Count, &m.TotalAmount, &m.RefundedAmount); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}

	return movements, rows.Err()
}
