package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

// DefaultCurrency applies when a service is created without one.
const DefaultCurrency = "AED"

type CatalogServiceImpl struct {
	db *database.DB
	catalog.Repository
}

func NewCatalogService(db *database.DB, repo catalog.Repository) catalog.CatalogService {
	return &CatalogServiceImpl{
		db:         db,
		Repository: repo,
	}
}

// CreateCategory implements catalog.CatalogService.
func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (*catalog.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.Repository.CreateCategory(ctx, &catalog.Category{
		Name:        req.Name,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	resp := catalog.ToCategoryResponse(created)
	return &resp, nil
}

// ListCategories implements catalog.CatalogService.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]catalog.CategoryResponse, error) {
	categories, err := s.Repository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]catalog.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, catalog.ToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

// DeleteCategory implements catalog.CatalogService. Categories with services are
// never deleted.
func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.Repository.CountServicesInCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count > 0 {
		return catalog.ErrCategoryInUse
	}

	return s.Repository.DeleteCategory(ctx, id)
}

// CreateService implements catalog.CatalogService.
func (s *CatalogServiceImpl) CreateService(ctx context.Context, req catalog.CreateServiceRequest) (*catalog.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.Repository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	created, err := s.Repository.CreateService(ctx, &catalog.Service{
		CategoryID:      category.ID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           decimal.NewFromFloat(req.Price),
		Currency:        currency,
		IsActive:        true,
	})
	if err != nil {
		return nil, err
	}

	created.CategoryName = category.DisplayName
	resp := catalog.ToServiceResponse(created)
	return &resp, nil
}

// GetService implements catalog.CatalogService.
func (s *CatalogServiceImpl) GetService(ctx context.Context, id string) (*catalog.ServiceResponse, error) {
	svc, err := s.Repository.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := catalog.ToServiceResponse(svc)
	return &resp, nil
}

// ListServices implements catalog.CatalogService.
func (s *CatalogServiceImpl) ListServices(ctx context.Context, categoryID string, activeOnly bool) ([]catalog.ServiceResponse, error) {
	services, err := s.Repository.ListServices(ctx, categoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]catalog.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, catalog.ToServiceResponse(&services[i]))
	}
	return responses, nil
}

// UpdateService implements catalog.CatalogService.
func (s *CatalogServiceImpl) UpdateService(ctx context.Context, id string, req catalog.UpdateServiceRequest) (*catalog.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc, err := s.Repository.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		svc.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.Repository.UpdateService(ctx, svc); err != nil {
		return nil, err
	}

	resp := catalog.ToServiceResponse(svc)
	return &resp, nil
}
