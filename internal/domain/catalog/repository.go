package catalog

import "context"

type Repository interface {
	CreateCategory(ctx context.Context, c *Category) (*Category, error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, s *Service) (*Service, error)
	GetServiceByID(ctx context.Context, id string) (*Service, error)
	ListServices(ctx context.Context, categoryID string, activeOnly bool) ([]Service, error)
	UpdateService(ctx context.Context, s *Service) error

	// CountServicesInCategory guards category deletion.
	CountServicesInCategory(ctx context.Context, categoryID string) (int64, error)
}
