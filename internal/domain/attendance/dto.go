package attendance

import (
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInResponse struct {
	CheckInTime time.Time `json:"checkInTime"`
}

type CheckOutResponse struct {
	CheckOutTime time.Time `json:"checkOutTime"`
	WorkingHours float64   `json:"workingHours"`
}

type MarkAbsentRequest struct {
	Reason    string `json:"reason"`
	LeaveType string `json:"leaveType"`
}

func (r *MarkAbsentRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkAbsentResponse struct {
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason"`
	LeaveType string    `json:"leaveType"`
}

// Record is the flattened self-service attendance row. CheckIn and CheckOut
// are bare timestamps here; the stored form keeps the full clock events.
type Record struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"date"`
	CheckIn      *time.Time `json:"checkIn"`
	CheckOut     *time.Time `json:"checkOut"`
	ActualHours  float64    `json:"actualHours"`
	Status       string     `json:"status"`
	IsLate       bool       `json:"isLate"`
	LateMinutes  int        `json:"lateMinutes"`
	IsAbsent     bool       `json:"isAbsent"`
	AbsentReason *string    `json:"absentReason"`
	LeaveType    *string    `json:"leaveType"`
	HoursWorked  float64    `json:"hoursWorked"`
}

// ToRecord flattens a stored attendance row for the my-attendance listing.
func ToRecord(a *Attendance) Record {
	rec := Record{
		ID:          a.ID,
		Date:        a.Date,
		ActualHours: a.HoursWorked(),
		Status:      a.Status,
		IsLate:      a.IsLate,
		LateMinutes: a.LateMinutes,
		IsAbsent:    a.Status == StatusAbsent,
		HoursWorked: a.HoursWorked(),
	}
	if a.ClockIn != nil {
		rec.CheckIn = &a.ClockIn.Time
	}
	if a.ClockOut != nil {
		rec.CheckOut = &a.ClockOut.Time
	}
	if a.Status == StatusAbsent {
		rec.AbsentReason = a.LeaveReason
		rec.LeaveType = a.LeaveType
	}
	return rec
}

// ListFilter bounds a my-attendance query. Both bounds are optional.
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// ParseListFilter validates raw query values. Empty values leave the bound
// open; the limit caps how many records come back, newest first.
func ParseListFilter(startDate, endDate string) (ListFilter, error) {
	var errs validator.ValidationErrors
	filter := ListFilter{Limit: 30}

	if startDate != "" {
		start, ok := validator.IsValidDate(startDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		} else {
			filter.StartDate = &start
		}
	}

	if endDate != "" {
		end, ok := validator.IsValidDate(endDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		} else {
			filter.EndDate = &end
		}
	}

	if len(errs) > 0 {
		return ListFilter{}, errs
	}

	return filter, nil
}
