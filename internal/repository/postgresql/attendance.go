package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, date, clock_in, clock_out, actual_hours, status,
	is_late, late_minutes, leave_reason, leave_type, created_at, updated_at
`

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID,
		&att.EmployeeID,
		&att.Date,
		&att.ClockIn,
		&att.ClockOut,
		&att.ActualHours,
		&att.Status,
		&att.IsLate,
		&att.LateMinutes,
		&att.LeaveReason,
		&att.LeaveType,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// Create implements attendance.Repository. One record per employee per date:
// a concurrent insert for the same day surfaces as ErrDuplicateDay. The
// record could have been created by either a check-in or a mark-absent, so
// no more specific error can be inferred here.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, clock_in, clock_out, actual_hours, status,
			is_late, late_minutes, leave_reason, leave_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		dateutil.UTCDay(att.Date),
		att.ClockIn,
		att.ClockOut,
		att.ActualHours,
		att.Status,
		att.IsLate,
		att.LateMinutes,
		att.LeaveReason,
		att.LeaveType,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrDuplicateDay
		}
		return err
	}

	return nil
}

// Update implements attendance.Repository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $1, clock_out = $2, actual_hours = $3, status = $4,
			is_late = $5, late_minutes = $6, leave_reason = $7, leave_type = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		att.ClockIn,
		att.ClockOut,
		att.ActualHours,
		att.Status,
		att.IsLate,
		att.LateMinutes,
		att.LeaveReason,
		att.LeaveType,
		att.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, dateutil.UTCDay(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return att, nil
}

// List implements attendance.Repository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, employeeID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}
	argPos := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, dateutil.UTCDay(*filter.StartDate))
		argPos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, dateutil.UTCDay(*filter.EndDate))
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d", argPos)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListRange implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, dateutil.UTCDay(start), dateutil.UTCDay(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListOpenBefore implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date < $1 AND clock_in IS NOT NULL AND clock_out IS NULL
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, dateutil.UTCDay(cutoff))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// StatsByEmployee implements attendance.Repository.
func (r *attendanceRepositoryImpl) StatsByEmployee(ctx context.Context, employeeID string, from time.Time) ([]attendance.StatusStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*), COALESCE(SUM(actual_hours), 0)
		FROM attendances
		WHERE employee_id = $1 AND date >= $2
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, employeeID, dateutil.UTCDay(from))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]attendance.StatusStat, 0)
	for rows.Next() {
		var st attendance.StatusStat
		if err := rows.Scan(&st.Status, &st.Count, &st.TotalHours); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *att)
	}
	return records, rows.Err()
}
