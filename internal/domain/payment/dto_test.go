package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

func TestRefundRequestValidate(t *testing.T) {
	reason := "client cancelled"
	amount := 50.0

	valid := RefundRequest{Amount: &amount, Reason: &reason}
	require.NoError(t, valid.Validate())

	fullRefund := RefundRequest{Reason: &reason}
	require.NoError(t, fullRefund.Validate())
}

func TestRefundRequestValidate_ReasonRequired(t *testing.T) {
	var errs validator.ValidationErrors

	missing := RefundRequest{}
	require.ErrorAs(t, missing.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "reason")

	blank := " "
	blankReq := RefundRequest{Reason: &blank}
	require.ErrorAs(t, blankReq.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "reason")
}

func TestRefundRequestValidate_AmountPositive(t *testing.T) {
	reason := "duplicate charge"
	zero := 0.0

	var errs validator.ValidationErrors
	req := RefundRequest{Amount: &zero, Reason: &reason}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "amount")
}
