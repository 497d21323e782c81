package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new employee-day record. A concurrent insert for the
	// same employee and date surfaces as ErrDuplicateDay.
	Create(ctx context.Context, att *Attendance) error

	// Update rewrites a record by ID.
	Update(ctx context.Context, att *Attendance) error

	// GetByEmployeeAndDate fetches one employee-day record, or
	// ErrAttendanceNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// List returns an employee's records newest first, bounded by the filter.
	List(ctx context.Context, employeeID string, filter ListFilter) ([]Attendance, error)

	// ListRange returns records within [start, end] ordered by date.
	ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListOpenBefore returns records from days before cutoff that have a
	// clock-in but no clock-out.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)

	// StatsByEmployee rolls up an employee's records by status from the
	// given date onward.
	StatsByEmployee(ctx context.Context, employeeID string, from time.Time) ([]StatusStat, error)
}
