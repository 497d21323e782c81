package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	stripeSDK "github.com/stripe/stripe-go/v76"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/payment"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/stripe"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

type PaymentServiceImpl struct {
	db *database.DB
	payment.Repository
	bookingRepo     booking.Repository
	stripeClient    *stripe.Client
	webhookVerifier *stripe.WebhookVerifier
}

func NewPaymentService(
	db *database.DB,
	paymentRepo payment.Repository,
	bookingRepo booking.Repository,
	stripeClient *stripe.Client,
	webhookVerifier *stripe.WebhookVerifier,
) payment.Service {
	return &PaymentServiceImpl{
		db:              db,
		Repository:      paymentRepo,
		bookingRepo:     bookingRepo,
		stripeClient:    stripeClient,
		webhookVerifier: webhookVerifier,
	}
}

// CreateIntent implements payment.Service. Cash payments skip the gateway
// and complete immediately; card payments open a gateway intent whose client
// secret the frontend uses to collect the card.
func (s *PaymentServiceImpl) CreateIntent(ctx context.Context, req payment.CreateIntentRequest) (*payment.CreateIntentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	callerID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, payment.ErrBookingNotFound
	}

	// Clients pay their own bookings; staff can take payments at the desk.
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if role, _ := claims["role"].(string); role == string(user.RoleClient) && b.ClientID != callerID {
		return nil, booking.ErrNotYourBooking
	}

	if b.PaymentStatus == booking.PaymentPaid {
		return nil, payment.ErrAlreadyPaid
	}

	existing, err := s.Repository.ListByBooking(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	for _, prev := range existing {
		if prev.Status != payment.StatusFailed && prev.Status != payment.StatusCancelled {
			return nil, payment.ErrPaymentExists
		}
	}

	amountCents := payment.ToCents(req.Amount)

	p := &payment.Payment{
		BookingID:   b.ID,
		ClientID:    b.ClientID,
		AmountCents: amountCents,
		Currency:    req.Currency,
		Method:      req.Method,
		Description: req.Description,
	}

	if req.Method == payment.MethodCash {
		now := time.Now().UTC()
		p.Gateway = payment.GatewayCash
		p.Status = payment.StatusCompleted
		p.PaidAt = &now

		created, err := s.Repository.Create(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment: %w", err)
		}

		if err := s.bookingRepo.UpdatePaymentStatus(ctx, b.ID, booking.PaymentPaid); err != nil {
			slog.Error("Failed to mark booking paid", "bookingId", b.ID, "error", err)
		}

		return &payment.CreateIntentResponse{
			PaymentID: created.ID,
			Amount:    req.Amount,
			Currency:  req.Currency,
			Status:    created.Status,
		}, nil
	}

	if s.stripeClient == nil {
		return nil, payment.ErrGatewayUnavailable
	}

	intent, err := s.stripeClient.CreatePaymentIntent(amountCents, req.Currency, map[string]string{
		"booking_id":     b.ID,
		"booking_number": b.BookingNumber,
		"client_id":      b.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.Gateway = payment.GatewayStripe
	p.GatewayIntentID = &intent.ID
	p.Status = intent.Status

	created, err := s.Repository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &payment.CreateIntentResponse{
		PaymentID:       created.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Status:          created.Status,
	}, nil
}

// Confirm implements payment.Service. Server-side confirmation uses the test
// card, so it only works against a test-mode gateway key.
func (s *PaymentServiceImpl) Confirm(ctx context.Context, req payment.ConfirmRequest) (*payment.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.stripeClient == nil {
		return nil, payment.ErrGatewayUnavailable
	}

	p, err := s.Repository.GetByIntentID(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	intent, err := s.stripeClient.ConfirmWithTestCard(req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm payment intent: %w", err)
	}

	s.applyIntentState(ctx, p, intent)

	if err := s.Repository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	resp := payment.ToResponse(p)
	return &resp, nil
}

// GetByID implements payment.Service.
func (s *PaymentServiceImpl) GetByID(ctx context.Context, id string) (*payment.Response, error) {
	p, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizePaymentRead(ctx, p); err != nil {
		return nil, err
	}

	resp := payment.ToResponse(p)
	return &resp, nil
}

// Status implements payment.Service. The gateway is re-queried so the local
// row catches up with out-of-band state changes.
func (s *PaymentServiceImpl) Status(ctx context.Context, intentID string) (*payment.Response, error) {
	p, err := s.Repository.GetByIntentID(ctx, intentID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizePaymentRead(ctx, p); err != nil {
		return nil, err
	}

	if s.stripeClient != nil && p.Gateway == payment.GatewayStripe {
		intent, err := s.stripeClient.GetPaymentIntent(intentID)
		if err == nil && intent.Status != p.Status {
			s.applyIntentState(ctx, p, intent)
			if err := s.Repository.Update(ctx, p); err != nil {
				slog.Error("Failed to sync payment status", "paymentId", p.ID, "error", err)
			}
		}
	}

	resp := payment.ToResponse(p)
	return &resp, nil
}

// History implements payment.Service.
func (s *PaymentServiceImpl) History(ctx context.Context, filter payment.HistoryFilter) ([]payment.Response, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	clientID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	payments, total, err := s.Repository.ListByClient(ctx, clientID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]payment.Response, 0, len(payments))
	for i := range payments {
		responses = append(responses, payment.ToResponse(&payments[i]))
	}
	return responses, total, nil
}

// Refund implements payment.Service. A nil amount refunds the full remaining
// charge. Cash refunds are recorded locally without a gateway call.
func (s *PaymentServiceImpl) Refund(ctx context.Context, id string, req payment.RefundRequest) (*payment.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	refundCents := p.RefundableCents()
	if req.Amount != nil {
		refundCents = payment.ToCents(*req.Amount)
	}

	if err := p.ApplyRefund(refundCents); err != nil {
		return nil, err
	}

	if p.Gateway == payment.GatewayStripe {
		if s.stripeClient == nil {
			return nil, payment.ErrGatewayUnavailable
		}
		if p.GatewayIntentID == nil {
			return nil, payment.ErrNotRefundable
		}

		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}
		if _, err := s.stripeClient.Refund(*p.GatewayIntentID, refundCents, reason); err != nil {
			return nil, fmt.Errorf("failed to refund payment: %w", err)
		}
	}

	if err := s.Repository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	bookingStatus := booking.PaymentPartial
	if p.Status == payment.StatusRefunded {
		bookingStatus = booking.PaymentRefunded
	}
	if err := s.bookingRepo.UpdatePaymentStatus(ctx, p.BookingID, bookingStatus); err != nil {
		slog.Error("Failed to update booking payment status", "bookingId", p.BookingID, "error", err)
	}

	resp := payment.ToResponse(p)
	return &resp, nil
}

// Gateways implements payment.Service.
func (s *PaymentServiceImpl) Gateways(ctx context.Context) []payment.GatewayInfo {
	return []payment.GatewayInfo{
		{
			Name:       payment.GatewayStripe,
			Enabled:    s.stripeClient != nil,
			Methods:    []string{payment.MethodCard, payment.MethodDigitalWallet},
			Currencies: validator.SupportedCurrencies,
		},
		{
			Name:       payment.GatewayCash,
			Enabled:    true,
			Methods:    []string{payment.MethodCash, payment.MethodBankTransfer},
			Currencies: validator.SupportedCurrencies,
		},
	}
}

// HandleWebhook implements payment.Service.
func (s *PaymentServiceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.webhookVerifier == nil {
		return payment.ErrGatewayUnavailable
	}

	event, err := s.webhookVerifier.Verify(payload, signature)
	if err != nil {
		return payment.ErrWebhookSignature
	}

	switch event.Type {
	case stripe.EventPaymentIntentSucceeded:
		return s.handleIntentSucceeded(ctx, event)
	case stripe.EventPaymentIntentFailed:
		return s.handleIntentFailed(ctx, event)
	case stripe.EventPaymentIntentCanceled:
		return s.handleIntentCanceled(ctx, event)
	case stripe.EventChargeRefunded:
		return s.handleChargeRefunded(ctx, event)
	case stripe.EventChargeDisputeCreated:
		return s.handleDisputeCreated(ctx, event)
	default:
		slog.Info("Ignoring webhook event", "type", event.Type)
		return nil
	}
}

func (s *PaymentServiceImpl) handleIntentSucceeded(ctx context.Context, event *stripeSDK.Event) error {
	var intent stripeSDK.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	p, err := s.Repository.GetByIntentID(ctx, intent.ID)
	if err != nil {
		return err
	}

	chargeID := ""
	if intent.LatestCharge != nil {
		chargeID = intent.LatestCharge.ID
	}
	p.MarkCompleted(chargeID, time.Now().UTC())

	if err := s.Repository.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	if err := s.bookingRepo.UpdatePaymentStatus(ctx, p.BookingID, booking.PaymentPaid); err != nil {
		slog.Error("Failed to mark booking paid", "bookingId", p.BookingID, "error", err)
	}
	return nil
}

func (s *PaymentServiceImpl) handleIntentFailed(ctx context.Context, event *stripeSDK.Event) error {
	var intent stripeSDK.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	p, err := s.Repository.GetByIntentID(ctx, intent.ID)
	if err != nil {
		return err
	}

	reason := "payment failed"
	if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
		reason = intent.LastPaymentError.Msg
	}
	p.MarkFailed(reason)

	return s.Repository.Update(ctx, p)
}

func (s *PaymentServiceImpl) handleIntentCanceled(ctx context.Context, event *stripeSDK.Event) error {
	var intent stripeSDK.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	p, err := s.Repository.GetByIntentID(ctx, intent.ID)
	if err != nil {
		return err
	}
	if p.Status == payment.StatusCompleted {
		return nil
	}

	p.Status = payment.StatusCancelled
	return s.Repository.Update(ctx, p)
}

func (s *PaymentServiceImpl) handleDisputeCreated(ctx context.Context, event *stripeSDK.Event) error {
	var dispute stripeSDK.Dispute
	if err := json.Unmarshal(event.Data.Raw, &dispute); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	intentID := ""
	if dispute.PaymentIntent != nil {
		intentID = dispute.PaymentIntent.ID
	}
	slog.Warn("Payment disputed", "dispute_id", dispute.ID, "intent_id", intentID, "amount", dispute.Amount, "reason", dispute.Reason)
	return nil
}

func (s *PaymentServiceImpl) handleChargeRefunded(ctx context.Context, event *stripeSDK.Event) error {
	var charge stripeSDK.Charge
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	if charge.PaymentIntent == nil {
		return nil
	}

	p, err := s.Repository.GetByIntentID(ctx, charge.PaymentIntent.ID)
	if err != nil {
		return err
	}

	// Refund webhooks carry the cumulative refunded amount.
	delta := charge.AmountRefunded - p.RefundedCents
	if delta <= 0 {
		return nil
	}
	if err := p.ApplyRefund(delta); err != nil {
		return err
	}

	if err := s.Repository.Update(ctx, p); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	bookingStatus := booking.PaymentPartial
	if p.Status == payment.StatusRefunded {
		bookingStatus = booking.PaymentRefunded
	}
	if err := s.bookingRepo.UpdatePaymentStatus(ctx, p.BookingID, bookingStatus); err != nil {
		slog.Error("Failed to update booking payment status", "bookingId", p.BookingID, "error", err)
	}
	return nil
}

// CashMovementSummary implements payment.Service. Defaults to the trailing
// 30 days when the range is open-ended.
func (s *PaymentServiceImpl) CashMovementSummary(ctx context.Context, startDate, endDate string) (*payment.CashMovementSummary, error) {
	now := time.Now().UTC()

	end := now
	if endDate != "" {
		parsed, ok := validator.IsValidDate(endDate)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"}}
		}
		end = parsed.Add(24*time.Hour - time.Second)
	}

	start := end.AddDate(0, 0, -30)
	if startDate != "" {
		parsed, ok := validator.IsValidDate(startDate)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"}}
		}
		start = parsed
	}

	movements, err := s.Repository.CashMovements(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cash movements: %w", err)
	}

	net := 0.0
	for _, m := range movements {
		net += m.TotalAmount - m.RefundedAmount
	}

	return &payment.CashMovementSummary{
		StartDate: start,
		EndDate:   end,
		Movements: movements,
		NetTotal:  net,
	}, nil
}

// applyIntentState copies the gateway intent's state onto the local payment.
func (s *PaymentServiceImpl) applyIntentState(ctx context.Context, p *payment.Payment, intent *stripe.PaymentIntent) {
	switch intent.Status {
	case payment.StatusCompleted:
		p.MarkCompleted(intent.ChargeID, time.Now().UTC())
		if err := s.bookingRepo.UpdatePaymentStatus(ctx, p.BookingID, booking.PaymentPaid); err != nil {
			slog.Error("Failed to mark booking paid", "bookingId", p.BookingID, "error", err)
		}
	default:
		p.Status = intent.Status
	}
}

func (s *PaymentServiceImpl) authorizePaymentRead(ctx context.Context, p *payment.Payment) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role != string(user.RoleClient) {
		return nil
	}

	userID, _ := claims["user_id"].(string)
	if userID != p.ClientID {
		return payment.ErrPaymentNotFound
	}
	return nil
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}
