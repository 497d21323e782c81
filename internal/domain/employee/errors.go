package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeCodeExists    = errors.New("employee code already exists")
	ErrUserAlreadyEmployee   = errors.New("user is already registered as an employee")
	ErrHasActiveBookings     = errors.New("cannot deactivate employee with active bookings")
	ErrEmployeeInactive      = errors.New("employee is not active")
	ErrForbiddenSelfOnly     = errors.New("you can only access your own data")
	ErrSearchQueryRequired   = errors.New("search query is required")
	ErrInvalidDocumentUpload = errors.New("invalid document upload")
)
