package payment

import "context"

type Service interface {
	// CreateIntent opens a payment for a booking. Card payments go through
	// the gateway; cash payments complete immediately.
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error)

	// Confirm finalizes a gateway payment and marks the booking paid.
	Confirm(ctx context.Context, req ConfirmRequest) (*Response, error)

	GetByID(ctx context.Context, id string) (*Response, error)
	Status(ctx context.Context, intentID string) (*Response, error)
	History(ctx context.Context, filter HistoryFilter) ([]Response, int64, error)
	Refund(ctx context.Context, id string, req RefundRequest) (*Response, error)
	Gateways(ctx context.Context) []GatewayInfo

	// HandleWebhook processes a signed gateway event payload.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error

	CashMovementSummary(ctx context.Context, startDate, endDate string) (*CashMovementSummary, error)
}
