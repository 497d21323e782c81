package payment

import "time"

// Payment methods
const (
	MethodCard          = "card"
	MethodBankTransfer  = "bank_transfer"
	MethodDigitalWallet = "digital_wallet"
	MethodCash          = "cash"
)

var Methods = []string{MethodCard, MethodBankTransfer, MethodDigitalWallet, MethodCash}

// Gateways
const (
	GatewayStripe = "stripe"
	GatewayCash   = "cash"
)

// Payment statuses
const (
	StatusPending           = "pending"
	StatusProcessing        = "processing"
	StatusCompleted         = "completed"
	StatusFailed            = "failed"
	StatusRefunded          = "refunded"
	StatusPartiallyRefunded = "partially_refunded"
	StatusCancelled         = "cancelled"
)

// Payment is one charge attempt against a booking. Amounts are integer
// minor units (cents); conversion to display values happens in the DTOs.
type Payment struct {
	ID              string
	BookingID       string
	ClientID        string
	AmountCents     int64
	Currency        string
	Method          string
	Gateway         string
	GatewayIntentID *string
	GatewayChargeID *string
	Status          string
	RefundedCents   int64
	FailureReason   *string
	Description     *string
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	BookingNumber string
}

// MarkCompleted finalizes a successful charge.
func (p *Payment) MarkCompleted(chargeID string, at time.Time) {
	p.Status = StatusCompleted
	p.GatewayChargeID = &chargeID
	p.PaidAt = &at
}

// MarkFailed records a gateway failure.
func (p *Payment) MarkFailed(reason string) {
	p.Status = StatusFailed
	p.FailureReason = &reason
}

// ApplyRefund records a refunded amount and derives the resulting status.
func (p *Payment) ApplyRefund(amountCents int64) error {
	if p.Status != StatusCompleted && p.Status != StatusPartiallyRefunded {
		return ErrNotRefundable
	}
	if amountCents <= 0 || p.RefundedCents+amountCents > p.AmountCents {
		return ErrInvalidRefundAmount
	}

	p.RefundedCents += amountCents
	if p.RefundedCents == p.AmountCents {
		p.Status = StatusRefunded
	} else {
		p.Status = StatusPartiallyRefunded
	}
	return nil
}

// RefundableCents is how much of the charge can still come back.
func (p *Payment) RefundableCents() int64 {
	return p.AmountCents - p.RefundedCents
}
