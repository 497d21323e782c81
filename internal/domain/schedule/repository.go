package schedule

import (
	"context"
	"time"
)

type Repository interface {
	// GetWorkSchedule returns every stored date entry for an employee.
	GetWorkSchedule(ctx context.Context, employeeID string) (WorkSchedule, error)

	// GetWorkScheduleRange returns stored date entries within [start, end].
	GetWorkScheduleRange(ctx context.Context, employeeID string, start, end time.Time) (WorkSchedule, error)

	// UpsertDays writes the given date keys from sched for an employee.
	UpsertDays(ctx context.Context, employeeID string, sched WorkSchedule, keys []string) error

	// GetLegacyTemplate returns the day-name keyed template, or nil when the
	// employee has none.
	GetLegacyTemplate(ctx context.Context, employeeID string) (WeeklyTemplate, error)
}
