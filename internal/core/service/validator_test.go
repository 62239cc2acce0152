package service

import (
	"testing"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func validRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

func violations(t *testing.T, err error) []domain.Violation {
	t.Helper()
	vErr, ok := domain.IsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	return vErr.Violations
}

func TestPaymentValidator_Valid(t *testing.T) {
	v := NewPaymentValidator(clock)

	assert.NoError(t, v.Validate(validRequest()))
}

func TestPaymentValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.PaymentRequest)
		field   string
		message string
	}{
		{"missing card number", func(r *domain.PaymentRequest) { r.CardNumber = "" }, "cardNumber", "Card number is required."},
		{"card number too short", func(r *domain.PaymentRequest) { r.CardNumber = "4111" }, "cardNumber", "Card number must be between 14 and 19 digits."},
		{"card number too long", func(r *domain.PaymentRequest) { r.CardNumber = "41111111111111111111" }, "cardNumber", "Card number must be between 14 and 19 digits."},
		{"card number not numeric", func(r *domain.PaymentRequest) { r.CardNumber = "4111-1111-1111-1" }, "cardNumber", "Card number must be numeric."},
		{"card number signed", func(r *domain.PaymentRequest) { r.CardNumber = "+41111111111111" }, "cardNumber", "Card number must be numeric."},
		{"missing month", func(r *domain.PaymentRequest) { r.ExpiryMonth = 0 }, "expiryMonth", "Expiry month is required."},
		{"month too large", func(r *domain.PaymentRequest) { r.ExpiryMonth = 13 }, "expiryMonth", "Expiry month must be between 1 and 12."},
		{"month negative", func(r *domain.PaymentRequest) { r.ExpiryMonth = -1 }, "expiryMonth", "Expiry month must be between 1 and 12."},
		{"missing year", func(r *domain.PaymentRequest) { r.ExpiryYear = 0 }, "expiryYear", "Expiry year is required."},
		{"missing currency", func(r *domain.PaymentRequest) { r.Currency = "" }, "currency", "Currency is required."},
		{"unsupported currency", func(r *domain.PaymentRequest) { r.Currency = "INR" }, "currency", "Only USD, EUR, or GBP are supported."},
		{"missing amount", func(r *domain.PaymentRequest) { r.Amount = 0 }, "amount", "Amount is required."},
		{"negative amount", func(r *domain.PaymentRequest) { r.Amount = -5 }, "amount", "Amount must be a positive integer."},
		{"missing cvv", func(r *domain.PaymentRequest) { r.CVV = "" }, "cvv", "CVV is required."},
		{"cvv too short", func(r *domain.PaymentRequest) { r.CVV = "12" }, "cvv", "CVV must be 3 or 4 digits."},
		{"cvv too long", func(r *domain.PaymentRequest) { r.CVV = "12345" }, "cvv", "CVV must be 3 or 4 digits."},
		{"cvv not numeric", func(r *domain.PaymentRequest) { r.CVV = "12a" }, "cvv", "CVV must be 3 or 4 digits."},
	}

	v := NewPaymentValidator(clock)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			got := violations(t, v.Validate(req))

			require.Len(t, got, 1)
			assert.Equal(t, domain.Violation{Field: tt.field, Message: tt.message}, got[0])
		})
	}
}

func TestPaymentValidator_AcceptsEdgeValues(t *testing.T) {
	v := NewPaymentValidator(clock)

	for _, mutate := range []func(r *domain.PaymentRequest){
		func(r *domain.PaymentRequest) { r.CardNumber = "41111111111111" },
		func(r *domain.PaymentRequest) { r.CardNumber = "4111111111111111111" },
		func(r *domain.PaymentRequest) { r.Currency = "usd" },
		func(r *domain.PaymentRequest) { r.Currency = "Eur" },
		func(r *domain.PaymentRequest) { r.CVV = "0123" },
		func(r *domain.PaymentRequest) { r.Amount = 1 },
		func(r *domain.PaymentRequest) { r.ExpiryMonth = 12 },
	} {
		req := validRequest()
		mutate(&req)
		assert.NoError(t, v.Validate(req), "request %+v", req)
	}
}

func TestPaymentValidator_ReportsEveryViolationInFieldOrder(t *testing.T) {
	v := NewPaymentValidator(clock)
	req := domain.PaymentRequest{
		CardNumber:  "4111",
		ExpiryMonth: 14,
		ExpiryYear:  2030,
		Currency:    "INR",
		Amount:      10,
		CVV:         "1",
	}

	got := violations(t, v.Validate(req))

	fields := make([]string, 0, len(got))
	for _, vi := range got {
		fields = append(fields, vi.Field)
	}
	assert.Equal(t, []string{"cardNumber", "expiryMonth", "currency", "cvv"}, fields)
}

func TestPaymentValidator_Expiry(t *testing.T) {
	v := NewPaymentValidator(clock)

	t.Run("current month is still valid", func(t *testing.T) {
		req := validRequest()
		req.ExpiryMonth, req.ExpiryYear = 3, 2026
		assert.NoError(t, v.Validate(req))
	})

	t.Run("previous month is expired", func(t *testing.T) {
		req := validRequest()
		req.ExpiryMonth, req.ExpiryYear = 2, 2026

		err := v.Validate(req)

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidExpiryDate))
		assert.Equal(t, domain.MsgInvalidExpiryDate, err.Error())
	})

	t.Run("negative year is expired", func(t *testing.T) {
		req := validRequest()
		req.ExpiryYear = -2030

		assert.True(t, domain.IsErrorCode(v.Validate(req), domain.ErrCodeInvalidExpiryDate))
	})

	t.Run("field violations win over expiry", func(t *testing.T) {
		req := validRequest()
		req.ExpiryYear = 2001
		req.CVV = "1"

		got := violations(t, v.Validate(req))
		assert.Len(t, got, 1)
	})
}

func TestPaymentValidator_DefaultsToWallClock(t *testing.T) {
	v := NewPaymentValidator(nil)
	req := validRequest()
	req.ExpiryYear = time.Now().UTC().Year() + 1

	assert.NoError(t, v.Validate(req))
}
