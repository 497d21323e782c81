package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.Repository
	employeeRepo   employee.Repository
	bookingRepo    booking.Repository
	attendanceRepo attendance.Repository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.Repository,
	employeeRepo employee.Repository,
	bookingRepo booking.Repository,
	attendanceRepo attendance.Repository,
) schedule.Service {
	return &ScheduleServiceImpl{
		db:             db,
		Repository:     scheduleRepo,
		employeeRepo:   employeeRepo,
		bookingRepo:    bookingRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GetEmployeeSchedule implements schedule.Service. The work schedule map is
// returned whole; bookings and attendance are filtered to the range.
func (s *ScheduleServiceImpl) GetEmployeeSchedule(ctx context.Context, employeeID string, filter schedule.RangeFilter) (*schedule.EmployeeScheduleResponse, error) {
	if err := s.authorizeScheduleRead(ctx, employeeID); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	sched, err := s.Repository.GetWorkSchedule(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEmployeeRange(ctx, employeeID, filter.StartDate, filter.EndDate.Add(24*time.Hour-time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	records, err := s.attendanceRepo.ListRange(ctx, employeeID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return &schedule.EmployeeScheduleResponse{
		WorkSchedule:     sched,
		Bookings:         toBookingSlots(bookings, employeeID),
		Attendance:       toAttendanceDays(records),
		UnavailableDates: toUnavailableDates(emp.Availability.UnavailableDates),
	}, nil
}

// UpdateWeek implements schedule.Service.
func (s *ScheduleServiceImpl) UpdateWeek(ctx context.Context, employeeID string, req schedule.UpdateWeekRequest) (*schedule.WeeklyView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	anchor := req.WeekAnchor(time.Now())
	weekStart := dateutil.WeekStart(anchor)
	weekEnd := weekStart.AddDate(0, 0, 6)

	current, err := s.Repository.GetWorkScheduleRange(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	merged, written, err := schedule.MergeWeek(current, req.WorkSchedule, anchor)
	if err != nil {
		return nil, err
	}

	if err := s.Repository.UpsertDays(ctx, employeeID, merged, written); err != nil {
		return nil, fmt.Errorf("failed to upsert schedule days: %w", err)
	}

	return s.WeeklyViewFor(ctx, employeeID, anchor)
}

// WeeklyViewFor implements schedule.Service.
func (s *ScheduleServiceImpl) WeeklyViewFor(ctx context.Context, employeeID string, anchor time.Time) (*schedule.WeeklyView, error) {
	weekStart := dateutil.WeekStart(anchor)
	weekEnd := weekStart.AddDate(0, 0, 6)

	stored, err := s.Repository.GetWorkScheduleRange(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}

	legacy, err := s.Repository.GetLegacyTemplate(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	view := schedule.ProjectWeek(stored, legacy, anchor)
	return &view, nil
}

// GetMySchedule implements schedule.Service.
func (s *ScheduleServiceImpl) GetMySchedule(ctx context.Context) (*schedule.MyScheduleResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekStart := dateutil.WeekStart(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	view, err := s.WeeklyViewFor(ctx, employeeID, now)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByEmployeeRange(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &schedule.MyScheduleResponse{
		WeekStartDate: dateutil.DateKey(weekStart),
		WorkSchedule:  *view,
		Bookings:      toBookingSlots(bookings, employeeID),
	}, nil
}

// authorizeScheduleRead lets staff read their own schedule and managers read
// anyone's.
func (s *ScheduleServiceImpl) authorizeScheduleRead(ctx context.Context, employeeID string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role == string(user.RoleAdmin) || role == string(user.RoleManager) {
		return nil
	}

	ownID, _ := claims["employee_id"].(string)
	if ownID != "" && ownID == employeeID {
		return nil
	}

	return schedule.ErrForbidden
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

func toBookingSlots(bookings []booking.Booking, employeeID string) []schedule.BookingSlot {
	slots := make([]schedule.BookingSlot, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		for _, item := range b.Items {
			if item.EmployeeID != employeeID {
				continue
			}
			slots = append(slots, schedule.BookingSlot{
				ID:              b.ID,
				BookingNumber:   b.BookingNumber,
				ClientName:      b.ClientName(),
				ClientPhone:     b.ClientPhone,
				ServiceName:     item.ServiceName,
				DurationMinutes: item.DurationMinutes,
				AppointmentDate: b.AppointmentDate,
				StartTime:       item.StartTime,
				EndTime:         item.EndTime,
				Status:          item.Status,
			})
		}
	}
	return slots
}

func toAttendanceDays(records []attendance.Attendance) []schedule.AttendanceDay {
	days := make([]schedule.AttendanceDay, 0, len(records))
	for i := range records {
		rec := &records[i]
		day := schedule.AttendanceDay{
			Date:        dateutil.DateKey(rec.Date),
			Status:      rec.Status,
			ActualHours: rec.ActualHours,
		}
		if rec.ClockIn != nil {
			day.ClockIn = &rec.ClockIn.Time
		}
		if rec.ClockOut != nil {
			day.ClockOut = &rec.ClockOut.Time
		}
		days = append(days, day)
	}
	return days
}

func toUnavailableDates(dates []employee.UnavailableDate) []schedule.UnavailableDate {
	out := make([]schedule.UnavailableDate, 0, len(dates))
	for _, d := range dates {
		out = append(out, schedule.UnavailableDate{
			StartDate: d.StartDate,
			EndDate:   d.EndDate,
			Reason:    d.Reason,
		})
	}
	return out
}
