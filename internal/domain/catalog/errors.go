package catalog

import "errors"

// Catalog domain errors
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
	ErrCategoryInUse      = errors.New("category has services and cannot be deleted")
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceInactive    = errors.New("service is not active")
)
