package schedule

import (
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

// UpdateWeekRequest carries day-name keyed edits plus the anchor date that
// pins them to one concrete week.
type UpdateWeekRequest struct {
	WorkSchedule  map[string]DaySchedule `json:"workSchedule"`
	WeekStartDate string                 `json:"weekStartDate"`
}

func (r *UpdateWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.WorkSchedule) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "workSchedule",
			Message: "workSchedule is required",
		})
	}

	for dayName, day := range r.WorkSchedule {
		if !dateutil.IsValidDayName(dayName) {
			errs = append(errs, validator.ValidationError{
				Field:   "workSchedule." + dayName,
				Message: "invalid day name",
			})
			continue
		}
		if day.StartTime != nil && !validator.IsValidTimeOfDay(*day.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "workSchedule." + dayName + ".startTime",
				Message: "startTime must be in HH:MM format",
			})
		}
		if day.EndTime != nil && !validator.IsValidTimeOfDay(*day.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "workSchedule." + dayName + ".endTime",
				Message: "endTime must be in HH:MM format",
			})
		}
	}

	if r.WeekStartDate != "" {
		if _, ok := validator.IsValidDate(r.WeekStartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "weekStartDate",
				Message: "weekStartDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekAnchor resolves the anchor date, defaulting to today when absent.
func (r *UpdateWeekRequest) WeekAnchor(now time.Time) time.Time {
	if r.WeekStartDate == "" {
		return dateutil.UTCDay(now)
	}
	anchor, err := dateutil.ParseDateKey(r.WeekStartDate)
	if err != nil {
		return dateutil.UTCDay(now)
	}
	return anchor
}

// RangeFilter is a startDate/endDate query window.
type RangeFilter struct {
	StartDate time.Time
	EndDate   time.Time
}

// ParseRangeFilter validates the raw query values and builds a filter.
func ParseRangeFilter(startDate, endDate string) (RangeFilter, error) {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return RangeFilter{}, errs
	}

	return RangeFilter{StartDate: start, EndDate: end}, nil
}

// BookingSlot is the booking summary embedded in a schedule response.
type BookingSlot struct {
	ID              string    `json:"id"`
	BookingNumber   string    `json:"bookingNumber"`
	ClientName      string    `json:"clientName"`
	ClientPhone     *string   `json:"clientPhone,omitempty"`
	ServiceName     string    `json:"serviceName"`
	DurationMinutes int       `json:"duration"`
	AppointmentDate time.Time `json:"appointmentDate"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
}

// AttendanceDay is the attendance summary embedded in a schedule response.
type AttendanceDay struct {
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	ClockIn     *time.Time `json:"clockIn,omitempty"`
	ClockOut    *time.Time `json:"clockOut,omitempty"`
	ActualHours *float64   `json:"actualHours,omitempty"`
}

// UnavailableDate is a blocked-out period on an employee's calendar.
type UnavailableDate struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    *string   `json:"reason,omitempty"`
}

// EmployeeScheduleResponse is the full schedule payload for a date range.
type EmployeeScheduleResponse struct {
	WorkSchedule     WorkSchedule      `json:"workSchedule"`
	Bookings         []BookingSlot     `json:"bookings"`
	Attendance       []AttendanceDay   `json:"attendance"`
	UnavailableDates []UnavailableDate `json:"unavailableDates"`
}

// MyScheduleResponse is the employee self-service week view.
type MyScheduleResponse struct {
	WeekStartDate string        `json:"weekStartDate"`
	WorkSchedule  WeeklyView    `json:"workSchedule"`
	Bookings      []BookingSlot `json:"bookings"`
}
