package booking

import "errors"

// Booking domain errors
var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSlotConflict     = errors.New("employee already has a booking in this time slot")
	ErrAlreadyCompleted = errors.New("booking has already been completed")
	ErrAlreadyCancelled = errors.New("booking has already been cancelled")
	ErrInvalidStatus    = errors.New("invalid booking status transition")
	ErrNotYourBooking   = errors.New("you can only access your own bookings")
)
