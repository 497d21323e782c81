package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

type bookingRepositoryImpl struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) booking.Repository {
	return &bookingRepositoryImpl{db: db}
}

const bookingColumns = `
	b.id, b.booking_number, b.client_id, b.appointment_date, b.total_duration,
	b.total_amount, b.currency, b.status, b.payment_status, b.notes,
	b.cancel_reason, b.created_at, b.updated_at,
	u.first_name, u.last_name, u.phone
`

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID,
		&b.BookingNumber,
		&b.ClientID,
		&b.AppointmentDate,
		&b.TotalDuration,
		&b.TotalAmount,
		&b.Currency,
		&b.Status,
		&b.PaymentStatus,
		&b.Notes,
		&b.CancelReason,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.ClientFirstName,
		&b.ClientLastName,
		&b.ClientPhone,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create implements booking.Repository. The booking row and its items are
// written in one transaction.
func (r *bookingRepositoryImpl) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	created := *b
	created.Items = make([]booking.Item, len(b.Items))
	copy(created.Items, b.Items)

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (
				booking_number, client_id, appointment_date, total_duration,
				total_amount, currency, status, payment_status, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			b.BookingNumber,
			b.ClientID,
			b.AppointmentDate,
			b.TotalDuration,
			b.TotalAmount,
			b.Currency,
			b.Status,
			b.PaymentStatus,
			b.Notes,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		itemQuery := `
			INSERT INTO booking_items (
				booking_id, service_id, employee_id, start_time, end_time,
				price, duration_minutes, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`

		for i := range created.Items {
			item := &created.Items[i]
			err := tx.QueryRow(ctx, itemQuery,
				created.ID,
				item.ServiceID,
				item.EmployeeID,
				item.StartTime,
				item.EndTime,
				item.Price,
				item.DurationMinutes,
				item.Status,
			).Scan(&item.ID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetByID implements booking.Repository.
func (r *bookingRepositoryImpl) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.client_id
		WHERE b.id = $1
	`

	b, err := scanBooking(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	if err := r.loadItems(ctx, []*booking.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// List implements booking.Repository.
func (r *bookingRepositoryImpl) List(ctx context.Context, filter booking.ListFilter) ([]booking.Booking, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.ClientID != "" {
		where += fmt.Sprintf(" AND b.client_id = $%d", argPos)
		args = append(args, filter.ClientID)
		argPos++
	}
	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM booking_items i WHERE i.booking_id = b.id AND i.employee_id = $%d)", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND b.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND b.appointment_date >= $%d", argPos)
		args = append(args, dateutil.UTCDay(*filter.StartDate))
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND b.appointment_date <= $%d", argPos)
		args = append(args, dateutil.UTCDay(*filter.EndDate))
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM bookings b` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.client_id` + where +
		fmt.Sprintf(` ORDER BY b.appointment_date DESC, b.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	bookings, err := r.queryBookings(ctx, q, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// Update implements booking.Repository.
func (r *bookingRepositoryImpl) Update(ctx context.Context, b *booking.Booking) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bookings
		SET appointment_date = $1, total_duration = $2, total_amount = $3,
			status = $4, payment_status = $5, notes = $6, cancel_reason = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		b.AppointmentDate,
		b.TotalDuration,
		b.TotalAmount,
		b.Status,
		b.PaymentStatus,
		b.Notes,
		b.CancelReason,
		b.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

// UpdateStatus implements booking.Repository. Item statuses follow the
// booking for terminal transitions.
func (r *bookingRepositoryImpl) UpdateStatus(ctx context.Context, id, status string, reason *string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE bookings
			SET status = $1, cancel_reason = COALESCE($2, cancel_reason), updated_at = NOW()
			WHERE id = $3
		`, status, reason, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return booking.ErrBookingNotFound
		}

		if status == booking.StatusCancelled || status == booking.StatusCompleted || status == booking.StatusNoShow {
			_, err = tx.Exec(ctx, `UPDATE booking_items SET status = $1 WHERE booking_id = $2`, status, id)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdatePaymentStatus implements booking.Repository.
func (r *bookingRepositoryImpl) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE id = $2`, paymentStatus, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

// ListByEmployeeRange implements booking.Repository.
func (r *bookingRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ` + bookingColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.client_id
		JOIN booking_items i ON i.booking_id = b.id
		WHERE i.employee_id = $1
		  AND i.start_time >= $2 AND i.start_time <= $3
		  AND b.status = ANY($4)
		ORDER BY b.appointment_date
	`

	return r.queryBookings(ctx, q, query, employeeID, start, end, booking.ActiveStatuses)
}

// HasConflict implements booking.Repository.
func (r *bookingRepositoryImpl) HasConflict(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM booking_items i
			JOIN bookings b ON b.id = i.booking_id
			WHERE i.employee_id = $1
			  AND b.status = ANY($2)
			  AND i.start_time < $4 AND i.end_time > $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, booking.ActiveStatuses, start, end).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CountActiveByEmployee implements booking.Repository.
func (r *bookingRepositoryImpl) CountActiveByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT b.id)
		FROM bookings b
		JOIN booking_items i ON i.booking_id = b.id
		WHERE i.employee_id = $1
		  AND b.status = ANY($2)
		  AND i.start_time >= NOW()
	`

	var count int64
	err := q.QueryRow(ctx, query, employeeID, booking.ActiveStatuses).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// StatsByEmployee implements booking.Repository.
func (r *bookingRepositoryImpl) StatsByEmployee(ctx context.Context, employeeID string) ([]booking.ItemStatusStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.status, COUNT(*), COALESCE(SUM(i.price), 0)
		FROM booking_items i
		WHERE i.employee_id = $1
		GROUP BY i.status
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]booking.ItemStatusStat, 0)
	for rows.Next() {
		var st booking.ItemStatusStat
		if err := rows.Scan(&st.Status, &st.Count, &st.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// ListUpcomingByEmployee implements booking.Repository.
func (r *bookingRepositoryImpl) ListUpcomingByEmployee(ctx context.Context, employeeID string, limit int) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ` + bookingColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.client_id
		JOIN booking_items i ON i.booking_id = b.id
		WHERE i.employee_id = $1
		  AND b.status = ANY($2)
		  AND i.start_time >= NOW()
		ORDER BY b.appointment_date
		LIMIT $3
	`

	return r.queryBookings(ctx, q, query, employeeID, booking.ActiveStatuses, limit)
}

// NextSequence implements booking.Repository. Sequences are per appointment
// day and survive booking deletion.
func (r *bookingRepositoryImpl) NextSequence(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO booking_sequences (date, last_value)
		VALUES ($1, 1)
		ON CONFLICT (date)
		DO UPDATE SET last_value = booking_sequences.last_value + 1
		RETURNING last_value
	`

	var seq int64
	err := q.QueryRow(ctx, query, dateutil.UTCDay(date)).Scan(&seq)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *bookingRepositoryImpl) queryBookings(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]booking.Booking, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*booking.Booking, len(bookings))
	for i := range bookings {
		refs[i] = &bookings[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}

	return bookings, nil
}

// loadItems attaches items, with service and employee names, to bookings.
func (r *bookingRepositoryImpl) loadItems(ctx context.Context, bookings []*booking.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	ids := make([]string, len(bookings))
	byID := make(map[string]*booking.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
		b.Items = make([]booking.Item, 0)
	}

	query := `
		SELECT i.booking_id, i.id, i.service_id, i.employee_id, i.start_time,
			   i.end_time, i.price, i.duration_minutes, i.status,
			   s.name, TRIM(u.first_name || ' ' || u.last_name)
		FROM booking_items i
		JOIN services s ON s.id = i.service_id
		JOIN employees e ON e.id = i.employee_id
		JOIN users u ON u.id = e.user_id
		WHERE i.booking_id = ANY($1)
		ORDER BY i.start_time
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID string
		var item booking.Item
		err := rows.Scan(
			&bookingID,
			&item.ID,
			&item.ServiceID,
			&item.EmployeeID,
			&item.StartTime,
			&item.EndTime,
			&item.Price,
			&item.DurationMinutes,
			&item.Status,
			&item.ServiceName,
			&item.EmployeeName,
		)
		if err != nil {
			return err
		}
		if b, ok := byID[bookingID]; ok {
			b.Items = append(b.Items, item)
		}
	}

	return rows.Err()
}
