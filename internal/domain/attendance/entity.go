package attendance

import (
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
)

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Clock event methods
const (
	MethodMobileApp = "mobile-app"
	MethodManual    = "manual"
	MethodSystem    = "system"
)

const (
	DefaultAbsentReason = "Employee marked as absent"
	DefaultLeaveType    = "personal"
)

// StatusStat is a per-status rollup of one employee's attendance over a
// date range.
type StatusStat struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	TotalHours float64 `json:"totalHours"`
}

// ClockEvent records when and how a clock action happened.
type ClockEvent struct {
	Time   time.Time `json:"time"`
	Method string    `json:"method"`
}

// Attendance is one employee-day record. Date is midnight UTC; there is at
// most one record per employee per date.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     *ClockEvent
	ClockOut    *ClockEvent
	ActualHours *float64
	Status      string
	IsLate      bool
	LateMinutes int
	LeaveReason *string
	LeaveType   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewForDate returns an empty record for an employee-day.
func NewForDate(employeeID string, date time.Time) *Attendance {
	return &Attendance{
		EmployeeID: employeeID,
		Date:       dateutil.UTCDay(date),
		Status:     StatusPresent,
	}
}

// CheckIn records the clock-in event. Fails if the day already has a
// clock-in or was marked absent.
func (a *Attendance) CheckIn(now time.Time, method string) error {
	if a.ClockIn != nil {
		return ErrAlreadyCheckedIn
	}
	if a.Status == StatusAbsent {
		return ErrMarkedAbsent
	}

	a.ClockIn = &ClockEvent{Time: now, Method: method}
	a.Status = StatusPresent
	return nil
}

// ApplyLateness flags the record as late when clock-in happened after the
// scheduled "HH:MM" start for that day.
func (a *Attendance) ApplyLateness(scheduledStart string) {
	if a.ClockIn == nil {
		return
	}

	start, err := time.Parse("15:04", scheduledStart)
	if err != nil {
		return
	}

	day := dateutil.UTCDay(a.Date)
	scheduled := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)

	late := a.ClockIn.Time.Sub(scheduled)
	if late > 0 {
		a.IsLate = true
		a.LateMinutes = int(late.Minutes())
	}
}

// CheckOut records the clock-out event and computes worked hours, rounded
// to two decimals. Requires a prior clock-in and no prior clock-out.
func (a *Attendance) CheckOut(now time.Time, method string) error {
	if a.ClockIn == nil {
		return ErrNoCheckInRecord
	}
	if a.ClockOut != nil {
		return ErrAlreadyCheckedOut
	}

	a.ClockOut = &ClockEvent{Time: now, Method: method}
	hours := dateutil.RoundHours(now.Sub(a.ClockIn.Time))
	a.ActualHours = &hours
	return nil
}

// MarkAbsent sets the record to absent. Repeated calls overwrite the reason
// and leave type; a day with a clock-in can never become absent.
func (a *Attendance) MarkAbsent(reason, leaveType string) error {
	if a.ClockIn != nil {
		return ErrAbsentAfterCheckIn
	}

	if reason == "" {
		reason = DefaultAbsentReason
	}
	if leaveType == "" {
		leaveType = DefaultLeaveType
	}

	a.Status = StatusAbsent
	a.LeaveReason = &reason
	a.LeaveType = &leaveType
	return nil
}

// HoursWorked returns the computed hours, zero before check-out.
func (a *Attendance) HoursWorked() float64 {
	if a.ActualHours == nil {
		return 0
	}
	return *a.ActualHours
}
