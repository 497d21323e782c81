package giftcard

import "context"

type Service interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Response, error)
	UpdateTemplate(ctx context.Context, id string, req UpdateTemplateRequest) (*Response, error)
	ListTemplates(ctx context.Context) ([]Response, error)

	// Purchase instantiates a template into a coded card owned by the
	// authenticated user.
	Purchase(ctx context.Context, req PurchaseRequest) (*Response, error)

	GetByCode(ctx context.Context, code string) (*Response, error)
	ValidateCard(ctx context.Context, code string) (*ValidationResult, error)
	Redeem(ctx context.Context, req RedeemRequest) (*Response, error)
	ListMine(ctx context.Context) ([]Response, error)
	Cancel(ctx context.Context, id string) error
	Stats(ctx context.Context) (*StatsResponse, error)
}
