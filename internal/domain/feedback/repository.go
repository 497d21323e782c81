package feedback

import "context"

type Repository interface {
	// Create inserts a feedback row. A duplicate (booking, service, employee)
	// surfaces as ErrAlreadySubmitted.
	Create(ctx context.Context, f *Feedback) (*Feedback, error)

	GetByID(ctx context.Context, id string) (*Feedback, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Feedback, error)
	ListByClient(ctx context.Context, clientID string, limit int) ([]Feedback, error)
	ListByService(ctx context.Context, serviceID string, limit int) ([]Feedback, error)
	ListByBooking(ctx context.Context, bookingID string) ([]Feedback, error)
	SummaryByEmployee(ctx context.Context, employeeID string) (*Summary, error)
	SummaryByService(ctx context.Context, serviceID string) (*Summary, error)
}
