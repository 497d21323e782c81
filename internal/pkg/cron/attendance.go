package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceJobs(attendanceRepo attendance.Repository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendances", 1*time.Hour, j.AutoCloseStaleAttendances)
}

// AutoCloseStaleAttendances closes records from previous days that still have
// a check-in but no check-out, clocking them out at the end of their day.
func (j *AttendanceJobs) AutoCloseStaleAttendances(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale attendances job")

	today := dateutil.UTCDay(time.Now())
	stale, err := j.attendanceRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list open attendances: %w", err)
	}

	if len(stale) == 0 {
		slog.Info("Cron: No stale attendances found")
		return nil
	}

	closedCount := 0
	for i := range stale {
		record := &stale[i]

		// End of the record's day
		endOfDay := dateutil.UTCDay(record.Date).Add(24*time.Hour - time.Minute)
		if err := record.CheckOut(endOfDay, attendance.MethodSystem); err != nil {
			slog.Error("Cron: Failed to close attendance",
				"attendance_id", record.ID,
				"employee_id", record.EmployeeID,
				"error", err)
			continue
		}

		if err := j.attendanceRepo.Update(ctx, record); err != nil {
			slog.Error("Cron: Failed to update attendance",
				"attendance_id", record.ID,
				"employee_id", record.EmployeeID,
				"error", err)
			continue
		}

		closedCount++
	}

	slog.Info("Cron: Auto-closed stale attendances", "count", closedCount)
	return nil
}
