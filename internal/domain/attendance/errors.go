package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrNoCheckInRecord    = errors.New("no check-in record found for today")
	ErrAbsentAfterCheckIn = errors.New("cannot mark as absent after checking in")
	ErrMarkedAbsent       = errors.New("already marked as absent today")
	ErrDuplicateDay       = errors.New("attendance already recorded for today")

	ErrEmployeeRecordNotFound = errors.New("employee record not found")
	ErrAttendanceNotFound     = errors.New("attendance record not found")
)
