package feedback

import "context"

type Service interface {
	// Submit records a rating from the authenticated client. Only completed
	// bookings belonging to the client are eligible, once per service slot.
	Submit(ctx context.Context, req SubmitRequest) (*Response, error)

	// GetByBooking returns the ratings a client left on one of their bookings.
	GetByBooking(ctx context.Context, bookingID string) ([]Response, error)

	// ListMine returns the authenticated client's submitted ratings.
	ListMine(ctx context.Context) ([]Response, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]Response, error)
	ListByService(ctx context.Context, serviceID string) ([]Response, error)
	EmployeeSummary(ctx context.Context, employeeID string) (*Summary, error)
	ServiceSummary(ctx context.Context, serviceID string) (*Summary, error)
}
