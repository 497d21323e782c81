package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/feedback"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) feedback.Repository {
	return &feedbackRepositoryImpl{db: db}
}

const feedbackColumns = `
	f.id, f.booking_id, f.service_id, f.employee_id, f.client_id, f.rating,
	f.comment, f.submitted_at,
	u.first_name, u.last_name, s.name
`

func scanFeedback(row pgx.Row) (*feedback.Feedback, error) {
	var f feedback.Feedback
	err := row.Scan(
		&f.ID,
		&f.BookingID,
		&f.ServiceID,
		&f.EmployeeID,
		&f.ClientID,
		&f.Rating,
		&f.Comment,
		&f.SubmittedAt,
		&f.ClientFirstName,
		&f.ClientLastName,
		&f.ServiceName,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create implements feedback.Repository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedback (booking_id, service_id, employee_id, client_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, submitted_at
	`

	created := *f
	err := q.QueryRow(ctx, query,
		f.BookingID,
		f.ServiceID,
		f.EmployeeID,
		f.ClientID,
		f.Rating,
		f.Comment,
	).Scan(&created.ID, &created.SubmittedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, feedback.ErrAlreadySubmitted
		}
		return nil, err
	}

	return &created, nil
}

// GetByID implements feedback.Repository.
func (r *feedbackRepositoryImpl) GetByID(ctx context.Context, id string) (*feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback f
		JOIN users u ON u.id = f.client_id
		JOIN services s ON s.id = f.service_id
		WHERE f.id = $1
	`

	f, err := scanFeedback(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, feedback.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// ListByEmployee implements feedback.Repository.
func (r *feedbackRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]feedback.Feedback, error) {
	return r.list(ctx, `f.employee_id`, employeeID, limit)
}

// ListByService implements feedback.Repository.
func (r *feedbackRepositoryImpl) ListByService(ctx context.Context, serviceID string, limit int) ([]feedback.Feedback, error) {
	return r.list(ctx, `f.service_id`, serviceID, limit)
}

// ListByClient implements feedback.Repository.
func (r *feedbackRepositoryImpl) ListByClient(ctx context.Context, clientID string, limit int) ([]feedback.Feedback, error) {
	return r.list(ctx, `f.client_id`, clientID, limit)
}

// ListByBooking implements feedback.Repository.
func (r *feedbackRepositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]feedback.Feedback, error) {
	return r.list(ctx, `f.booking_id`, bookingID, 100)
}

func (r *feedbackRepositoryImpl) list(ctx context.Context, column, value string, limit int) ([]feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback f
		JOIN users u ON u.id = f.client_id
		JOIN services s ON s.id = f.service_id
		WHERE ` + column + ` = $1
		ORDER BY f.submitted_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, value, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]feedback.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *f)
	}

	return entries, rows.Err()
}

// SummaryByEmployee implements feedback.Repository.
func (r *feedbackRepositoryImpl) SummaryByEmployee(ctx context.Context, employeeID string) (*feedback.Summary, error) {
	return r.summary(ctx, `employee_id`, employeeID)
}

// SummaryByService implements feedback.Repository.
func (r *feedbackRepositoryImpl) SummaryByService(ctx context.Context, serviceID string) (*feedback.Summary, error) {
	return r.summary(ctx, `service_id`, serviceID)
}

func (r *feedbackRepositoryImpl) summary(ctx context.Context, column, value string) (*feedback.Summary, error) {
	q := GetQuerier(ctx, r.db)

	summary := &feedback.Summary{Breakdown: make(map[int]int)}

	query := `
		SELECT rating, COUNT(*)
		FROM feedback
		WHERE ` + column + ` = $1
		GROUP BY rating
	`

	rows, err := q.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sum := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		summary.Breakdown[rating] = count
		summary.Total += count
		sum += rating * count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if summary.Total > 0 {
		summary.Average = float64(sum) / float64(summary.Total)
	}

	return summary, nil
}
