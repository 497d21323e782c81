package catalog

import "context"

// CatalogService carries its domain prefix because Service is taken by the
// entity: a spa service is the thing this package is about.
type CatalogService interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, req CreateServiceRequest) (*ServiceResponse, error)
	GetService(ctx context.Context, id string) (*ServiceResponse, error)
	ListServices(ctx context.Context, categoryID string, activeOnly bool) ([]ServiceResponse, error)
	UpdateService(ctx context.Context, id string, req UpdateServiceRequest) (*ServiceResponse, error)
}
