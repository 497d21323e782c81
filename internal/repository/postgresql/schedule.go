package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

// GetWorkSchedule implements schedule.Repository.
func (r *scheduleRepositoryImpl) GetWorkSchedule(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, day_schedule
		FROM work_schedule_days
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDays(rows)
}

// GetWorkScheduleRange implements schedule.Repository.
func (r *scheduleRepositoryImpl) GetWorkScheduleRange(ctx context.Context, employeeID string, start, end time.Time) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, day_schedule
		FROM work_schedule_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, dateutil.UTCDay(start), dateutil.UTCDay(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDays(rows)
}

func collectDays(rows pgx.Rows) (schedule.WorkSchedule, error) {
	sched := make(schedule.WorkSchedule)
	for rows.Next() {
		var date time.Time
		var day schedule.DaySchedule
		if err := rows.Scan(&date, &day); err != nil {
			return nil, err
		}
		sched[dateutil.DateKey(date)] = day
	}
	return sched, rows.Err()
}

// UpsertDays implements schedule.Repository.
func (r *scheduleRepositoryImpl) UpsertDays(ctx context.Context, employeeID string, sched schedule.WorkSchedule, keys []string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO work_schedule_days (employee_id, date, day_schedule)
			VALUES ($1, $2, $3)
			ON CONFLICT (employee_id, date)
			DO UPDATE SET day_schedule = EXCLUDED.day_schedule, updated_at = NOW()
		`

		for _, key := range keys {
			day, ok := sched[key]
			if !ok {
				continue
			}
			date, err := dateutil.ParseDateKey(key)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, query, employeeID, date, day); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetLegacyTemplate implements schedule.Repository.
func (r *scheduleRepositoryImpl) GetLegacyTemplate(ctx context.Context, employeeID string) (schedule.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	var template schedule.WeeklyTemplate
	err := q.QueryRow(ctx, `SELECT work_schedule FROM employees WHERE id = $1`, employeeID).Scan(&template)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEmployeeNotFound
		}
		return nil, err
	}

	return template, nil
}
