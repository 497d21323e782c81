package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, int64, error)
	GetByID(ctx context.Context, id string) (*Response, error)

	// Update applies partial profile edits. Schedule edits in the request are
	// merged into the week anchored by weekStartDate.
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)

	// Deactivate retires an employee. Fails while active bookings exist.
	Deactivate(ctx context.Context, id string, reason string) error

	UpdateAvailability(ctx context.Context, id string, req AvailabilityRequest) (*Availability, error)
	GetAvailable(ctx context.Context, filter AvailableFilter) ([]Response, error)
	Search(ctx context.Context, query string) ([]Response, error)
	Stats(ctx context.Context) (*StatsResponse, error)
	UploadDocument(ctx context.Context, id string, req DocumentUploadRequest) (*Document, error)

	// GetMyRatings returns feedback stats for the authenticated employee.
	GetMyRatings(ctx context.Context) (*RatingsResponse, error)

	// GetPerformance aggregates booking, revenue, and attendance figures for
	// one employee. Employees can only fetch their own.
	GetPerformance(ctx context.Context, id string) (*PerformanceResponse, error)
}
