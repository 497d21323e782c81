package feedback

import "errors"

// Feedback domain errors
var (
	ErrNotFound          = errors.New("feedback not found")
	ErrAlreadySubmitted  = errors.New("feedback already submitted for this service")
	ErrBookingNotYours   = errors.New("you can only review your own bookings")
	ErrBookingNotEligible = errors.New("feedback is only allowed on completed bookings")
)
