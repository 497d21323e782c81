package payment

import "errors"

// Payment domain errors
var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAlreadyPaid         = errors.New("booking is already paid")
	ErrPaymentExists       = errors.New("a payment already exists for this booking")
	ErrNotRefundable       = errors.New("payment is not in a refundable state")
	ErrInvalidRefundAmount = errors.New("invalid refund amount")
	ErrGatewayUnavailable  = errors.New("payment gateway is unavailable")
	ErrWebhookSignature    = errors.New("invalid webhook signature")
)
