package schedule

import "errors"

// Schedule domain errors
var (
	ErrInvalidDayName   = errors.New("invalid day name in work schedule")
	ErrInvalidWeekStart = errors.New("invalid week start date")
	ErrInvalidDateRange = errors.New("startDate and endDate are required and must be valid dates")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrForbidden        = errors.New("you can only access your own schedule")
)
