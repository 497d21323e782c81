package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

// ========================================
// CATALOG DTOs
// ========================================

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) || len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and cannot exceed 50 characters",
		})
	}

	if validator.IsEmpty(r.DisplayName) || len(r.DisplayName) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "displayName",
			Message: "displayName is required and cannot exceed 50 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
	}
}

type CreateServiceRequest struct {
	CategoryID      string  `json:"categoryId"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
}

func (r *CreateServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "categoryId",
			Message: "categoryId is required",
		})
	}

	if validator.IsEmpty(r.Name) || len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and cannot exceed 100 characters",
		})
	}

	if r.DurationMinutes < 5 || r.DurationMinutes > 600 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration",
			Message: "duration must be between 5 and 600 minutes",
		})
	}

	if r.Price < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	if r.Currency != "" && !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "unsupported currency",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration"`
	Price           *float64 `json:"price"`
	IsActive        *bool    `json:"isActive"`
}

func (r *UpdateServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && (validator.IsEmpty(*r.Name) || len(*r.Name) > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty or exceed 100 characters",
		})
	}

	if r.DurationMinutes != nil && (*r.DurationMinutes < 5 || *r.DurationMinutes > 600) {
		errs = append(errs, validator.ValidationError{
			Field:   "duration",
			Message: "duration must be between 5 and 600 minutes",
		})
	}

	if r.Price != nil && *r.Price < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ServiceResponse struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"categoryId"`
	CategoryName    string          `json:"categoryName,omitempty"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"duration"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func ToServiceResponse(s *Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		CategoryID:      s.CategoryID,
		CategoryName:    s.CategoryName,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Currency:        s.Currency,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}
