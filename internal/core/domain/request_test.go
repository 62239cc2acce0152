package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVV_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    domain.CVV
		wantErr bool
	}{
		{name: "integer", body: `{"cvv": 321}`, want: "321"},
		{name: "four digit integer", body: `{"cvv": 4321}`, want: "4321"},
		{name: "string keeps leading zero", body: `{"cvv": "0123"}`, want: "0123"},
		{name: "null", body: `{"cvv": null}`, want: ""},
		{name: "negative integer", body: `{"cvv": -321}`, wantErr: true},
		{name: "fraction", body: `{"cvv": 32.1}`, wantErr: true},
		{name: "boolean", body: `{"cvv": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req domain.PaymentRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.CVV)
		})
	}
}

func TestPaymentRequest_DecodesCamelCase(t *testing.T) {
	body := `{
		"cardNumber": "2222405343248877",
		"expiryMonth": 4,
		"expiryYear": 2031,
		"currency": "GBP",
		"amount": 100,
		"cvv": 123
	}`

	var req domain.PaymentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "2222405343248877", req.CardNumber)
	assert.Equal(t, 4, req.ExpiryMonth)
	assert.Equal(t, 2031, req.ExpiryYear)
	assert.Equal(t, "GBP", req.Currency)
	assert.Equal(t, int64(100), req.Amount)
	assert.Equal(t, domain.CVV("123"), req.CVV)
}
