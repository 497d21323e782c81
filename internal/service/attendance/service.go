package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	scheduleRepo schedule.Repository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	scheduleRepo schedule.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:           db,
		Repository:   attendanceRepo,
		scheduleRepo: scheduleRepo,
	}
}

// CheckIn implements attendance.Service. Days are keyed by UTC date; one
// record per employee per day.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (*attendance.CheckInResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := dateutil.UTCDay(now)

	record, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, fmt.Errorf("failed to get attendance: %w", err)
		}
		record = attendance.NewForDate(employeeID, today)
	}

	if err := record.CheckIn(now, attendance.MethodMobileApp); err != nil {
		return nil, err
	}

	s.applyScheduledLateness(ctx, employeeID, record, now)

	if record.ID == "" {
		err = s.Repository.Create(ctx, record)
	} else {
		err = s.Repository.Update(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	return &attendance.CheckInResponse{CheckInTime: record.ClockIn.Time}, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (*attendance.CheckOutResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	record, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, now)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, attendance.ErrNoCheckInRecord
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	if err := record.CheckOut(now, attendance.MethodMobileApp); err != nil {
		return nil, err
	}

	if err := s.Repository.Update(ctx, record); err != nil {
		return nil, err
	}

	return &attendance.CheckOutResponse{
		CheckOutTime: record.ClockOut.Time,
		WorkingHours: record.HoursWorked(),
	}, nil
}

// MarkAbsent implements attendance.Service. Repeated calls overwrite the
// reason; a checked-in day can never become absent.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, req attendance.MarkAbsentRequest) (*attendance.MarkAbsentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	today := dateutil.UTCDay(time.Now())

	record, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, today)
	isNew := false
	if err != nil {
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, fmt.Errorf("failed to get attendance: %w", err)
		}
		record = attendance.NewForDate(employeeID, today)
		isNew = true
	}

	if err := record.MarkAbsent(req.Reason, req.LeaveType); err != nil {
		return nil, err
	}

	if isNew {
		err = s.Repository.Create(ctx, record)
	} else {
		err = s.Repository.Update(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	return &attendance.MarkAbsentResponse{
		Date:      record.Date,
		Status:    record.Status,
		Reason:    *record.LeaveReason,
		LeaveType: *record.LeaveType,
	}, nil
}

// GetMyAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.Repository.List(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	out := make([]attendance.Record, 0, len(records))
	for i := range records {
		out = append(out, attendance.ToRecord(&records[i]))
	}
	return out, nil
}

// applyScheduledLateness flags late check-ins against the day's scheduled
// start, when one exists. Schedule lookups never block a check-in.
func (s *AttendanceServiceImpl) applyScheduledLateness(ctx context.Context, employeeID string, record *attendance.Attendance, now time.Time) {
	day := dateutil.UTCDay(now)
	sched, err := s.scheduleRepo.GetWorkScheduleRange(ctx, employeeID, day, day)
	if err != nil {
		return
	}

	entry, ok := sched[dateutil.DateKey(day)]
	if !ok || !entry.IsWorking || entry.StartTime == nil {
		return
	}

	record.ApplyLateness(*entry.StartTime)
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", user.ErrEmployeeAccessRequired
	}

	return employeeID, nil
}
