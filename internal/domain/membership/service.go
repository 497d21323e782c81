package membership

import "context"

type Service interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*Response, error)
	ListPlans(ctx context.Context) ([]Response, error)

	// Purchase instantiates a plan for the authenticated client, activating
	// it and computing its end date.
	Purchase(ctx context.Context, req PurchaseRequest) (*Response, error)

	ListMine(ctx context.Context) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	UseSession(ctx context.Context, req UseSessionRequest) (*Response, error)
	Cancel(ctx context.Context, id string) error
}
