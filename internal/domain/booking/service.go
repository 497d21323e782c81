package booking

import "context"

type Service interface {
	// Create books services for the authenticated client, checking employee
	// slot conflicts before confirming.
	Create(ctx context.Context, req CreateRequest) (*Response, error)

	GetByID(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, filter ListFilter) ([]Response, int64, error)
	ListMine(ctx context.Context) ([]Response, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Response, error)
	Cancel(ctx context.Context, id string, reason string) error
}
