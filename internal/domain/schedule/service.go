package schedule

import (
	"context"
	"time"
)

type Service interface {
	// GetEmployeeSchedule returns work schedule, bookings, attendance and
	// unavailable dates for an employee over a date range. Employees may only
	// read their own schedule; admins may read anyone's.
	GetEmployeeSchedule(ctx context.Context, employeeID string, filter RangeFilter) (*EmployeeScheduleResponse, error)

	// UpdateWeek merges day-name keyed edits into the week anchored by the
	// request and returns the resulting week view.
	UpdateWeek(ctx context.Context, employeeID string, req UpdateWeekRequest) (*WeeklyView, error)

	// WeeklyViewFor projects the week containing anchor for an employee.
	WeeklyViewFor(ctx context.Context, employeeID string, anchor time.Time) (*WeeklyView, error)

	// GetMySchedule returns the authenticated employee's current week.
	GetMySchedule(ctx context.Context) (*MyScheduleResponse, error)
}
