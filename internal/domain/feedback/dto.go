package feedback

import (
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// FEEDBACK DTOs
// ========================================

type SubmitRequest struct {
	BookingID  string  `json:"bookingId"`
	ServiceID  string  `json:"serviceId"`
	EmployeeID string  `json:"employeeId"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BookingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "bookingId",
			Message: "bookingId is required",
		})
	}

	if validator.IsEmpty(r.ServiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "serviceId",
			Message: "serviceId is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if r.Comment != nil && len(*r.Comment) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment cannot exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"bookingId"`
	ServiceID   string    `json:"serviceId"`
	EmployeeID  string    `json:"employeeId"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	ServiceName string    `json:"serviceName,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func ToResponse(f *Feedback) Response {
	return Response{
		ID:          f.ID,
		BookingID:   f.BookingID,
		ServiceID:   f.ServiceID,
		EmployeeID:  f.EmployeeID,
		Rating:      f.Rating,
		Comment:     f.Comment,
		ClientName:  f.ClientName(),
		ServiceName: f.ServiceName,
		SubmittedAt: f.SubmittedAt,
	}
}

// Summary aggregates ratings for an employee or a service.
type Summary struct {
	Average   float64     `json:"average"`
	Total     int         `json:"total"`
	Breakdown map[int]int `json:"breakdown"`
}
