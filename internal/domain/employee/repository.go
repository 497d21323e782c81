package employee

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, emp *Employee) (*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByUserID(ctx context.Context, userID string) (*Employee, error)
	GetByCode(ctx context.Context, code string) (*Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp *Employee) error
	Deactivate(ctx context.Context, id string, at time.Time, reason string) error
	UpdateAvailability(ctx context.Context, id string, availability Availability) error
	Search(ctx context.Context, query string, limit int) ([]Employee, error)
	ListByService(ctx context.Context, serviceID string) ([]Employee, error)
	Stats(ctx context.Context) (*StatsResponse, error)
	AddDocument(ctx context.Context, employeeID string, doc Document) error
	NextCode(ctx context.Context) (string, error)
}
