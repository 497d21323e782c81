package response

import (
	"errors"
	"net/http"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/auth"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/feedback"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/payment"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthExchangeFailed):
		Unauthorized(w, "OAuth code exchange failed")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrEmployeeAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrUserAlreadyEmployee):
		Conflict(w, "User is already registered as an employee")
	case errors.Is(err, employee.ErrHasActiveBookings):
		Conflict(w, "Cannot deactivate employee with active bookings")
	case errors.Is(err, employee.ErrForbiddenSelfOnly):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrSearchQueryRequired),
		errors.Is(err, employee.ErrInvalidDocumentUpload):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, schedule.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, schedule.ErrInvalidDayName),
		errors.Is(err, schedule.ErrInvalidWeekStart),
		errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrAbsentAfterCheckIn),
		errors.Is(err, attendance.ErrMarkedAbsent),
		errors.Is(err, attendance.ErrDuplicateDay),
		errors.Is(err, attendance.ErrNoCheckInRecord):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, attendance.ErrEmployeeRecordNotFound):
		NotFound(w, err.Error())

	// Catalog domain errors
	case errors.Is(err, catalog.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, catalog.ErrCategoryNameExists):
		Conflict(w, "Category name already exists")
	case errors.Is(err, catalog.ErrCategoryInUse):
		Conflict(w, "Category still has services")
	case errors.Is(err, catalog.ErrServiceNotFound):
		NotFound(w, "Service not found")
	case errors.Is(err, catalog.ErrServiceInactive):
		BadRequest(w, "Service is not active", nil)

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrSlotConflict),
		errors.Is(err, booking.ErrAlreadyCompleted),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrInvalidStatus):
		Conflict(w, err.Error())
	case errors.Is(err, booking.ErrNotYourBooking):
		Forbidden(w, err.Error())

	// Gift card domain errors
	case errors.Is(err, giftcard.ErrNotFound):
		NotFound(w, "Gift card not found")
	case errors.Is(err, giftcard.ErrTemplateNotFound):
		NotFound(w, "Gift card template not found")
	case errors.Is(err, giftcard.ErrExpired),
		errors.Is(err, giftcard.ErrInsufficientBalance),
		errors.Is(err, giftcard.ErrNotAvailable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, giftcard.ErrCodeExists):
		Conflict(w, err.Error())

	// Membership domain errors
	case errors.Is(err, membership.ErrNotFound):
		NotFound(w, "Membership not found")
	case errors.Is(err, membership.ErrTemplateNotFound):
		NotFound(w, "Membership plan not found")
	case errors.Is(err, membership.ErrNotActive),
		errors.Is(err, membership.ErrMembershipExpired),
		errors.Is(err, membership.ErrSessionsExhausted),
		errors.Is(err, membership.ErrServiceNotCovered):
		BadRequest(w, err.Error(), nil)

	// Feedback domain errors
	case errors.Is(err, feedback.ErrNotFound):
		NotFound(w, "Feedback not found")
	case errors.Is(err, feedback.ErrAlreadySubmitted):
		Conflict(w, err.Error())
	case errors.Is(err, feedback.ErrBookingNotYours):
		Forbidden(w, err.Error())
	case errors.Is(err, feedback.ErrBookingNotEligible):
		BadRequest(w, err.Error(), nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, payment.ErrAlreadyPaid),
		errors.Is(err, payment.ErrPaymentExists):
		Conflict(w, err.Error())
	case errors.Is(err, payment.ErrNotRefundable),
		errors.Is(err, payment.ErrInvalidRefundAmount),
		errors.Is(err, payment.ErrWebhookSignature):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payment.ErrGatewayUnavailable):
		InternalServerError(w, "Payment gateway is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
