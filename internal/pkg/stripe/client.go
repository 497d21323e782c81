package stripe

import (
	"fmt"
	"strings"

	stripeSDK "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/Muhammedsajid10/spaBackend/internal/config"
)

// TestCardPaymentMethod is the Stripe test card used for server-side
// confirmation in non-production environments.
const TestCardPaymentMethod = "pm_card_visa"

// Client wraps the official Stripe SDK
type Client struct {
	sdk *client.API
}

// NewClient creates a new Stripe client using the official SDK
func NewClient(cfg config.StripeConfig) *Client {
	sdk := &client.API{}
	sdk.Init(cfg.SecretKey, nil)

	return &Client{sdk: sdk}
}

// APIError represents a Stripe API error
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe API error [%d] %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if stripeErr, ok := err.(*stripeSDK.Error); ok {
		return &APIError{
			StatusCode: stripeErr.HTTPStatusCode,
			ErrorCode:  string(stripeErr.Code),
			Message:    stripeErr.Msg,
		}
	}
	return err
}

// PaymentIntent is the subset of the gateway object the service layer needs.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Status       string
	ChargeID     string
}

func toPaymentIntent(pi *stripeSDK.PaymentIntent) *PaymentIntent {
	out := &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
		Status:       MapStatus(pi.Status),
	}
	if pi.LatestCharge != nil {
		out.ChargeID = pi.LatestCharge.ID
	}
	return out
}

// CreatePaymentIntent opens an intent with automatic payment methods, so
// the frontend can collect any card type against the client secret.
func (c *Client) CreatePaymentIntent(amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripeSDK.PaymentIntentParams{
		Amount:   stripeSDK.Int64(amountCents),
		Currency: stripeSDK.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripeSDK.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeSDK.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.sdk.PaymentIntents.New(params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return toPaymentIntent(pi), nil
}

// ConfirmWithTestCard confirms an intent server-side with the Visa test
// card. Only meaningful against a test-mode key.
func (c *Client) ConfirmWithTestCard(intentID string) (*PaymentIntent, error) {
	params := &stripeSDK.PaymentIntentConfirmParams{
		PaymentMethod: stripeSDK.String(TestCardPaymentMethod),
	}

	pi, err := c.sdk.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return nil, wrapErr(err)
	}
	return toPaymentIntent(pi), nil
}

// GetPaymentIntent fetches the current state of an intent.
func (c *Client) GetPaymentIntent(intentID string) (*PaymentIntent, error) {
	pi, err := c.sdk.PaymentIntents.Get(intentID, nil)
	if err != nil {
		return nil, wrapErr(err)
	}
	return toPaymentIntent(pi), nil
}

// Refund returns money against an intent. amountCents of zero refunds the
// full remaining charge.
func (c *Client) Refund(intentID string, amountCents int64, reason string) (string, error) {
	params := &stripeSDK.RefundParams{
		PaymentIntent: stripeSDK.String(intentID),
	}
	if amountCents > 0 {
		params.Amount = stripeSDK.Int64(amountCents)
	}
	if reason != "" {
		params.Reason = stripeSDK.String(reason)
	}

	refund, err := c.sdk.Refunds.New(params)
	if err != nil {
		return "", wrapErr(err)
	}
	return refund.ID, nil
}

// MapStatus translates gateway intent statuses to payment statuses.
func MapStatus(s stripeSDK.PaymentIntentStatus) string {
	switch s {
	case stripeSDK.PaymentIntentStatusSucceeded:
		return "completed"
	case stripeSDK.PaymentIntentStatusProcessing, stripeSDK.PaymentIntentStatusRequiresCapture:
		return "processing"
	case stripeSDK.PaymentIntentStatusCanceled:
		return "cancelled"
	default:
		// requires_payment_method, requires_confirmation, requires_action
		return "pending"
	}
}
