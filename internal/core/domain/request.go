package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// SupportedCurrencies are the ISO codes accepted by the gateway.
var SupportedCurrencies = []string{"USD", "EUR", "GBP"}

// PaymentRequest is a merchant submission. It is transient: only the masked
// card number survives into a Payment.
type PaymentRequest struct {
	CardNumber  string `json:"cardNumber" validate:"required,min=14,max=19,digits" example:"4111111111111111"`
	ExpiryMonth int    `json:"expiryMonth" validate:"required,min=1,max=12" example:"12"`
	ExpiryYear  int    `json:"expiryYear" validate:"required" example:"2030"`
	Currency    string `json:"currency" validate:"required,currency" example:"GBP"`
	Amount      int64  `json:"amount" validate:"required,min=1" example:"250"`
	CVV         CVV    `json:"cvv" validate:"required,min=3,max=4,digits" swaggertype:"string" example:"321"`
}

// CVV is the card verification value kept as fixed-width digits so leading
// zeros survive. It decodes from either a JSON string or a JSON integer.
type CVV string

var errInvalidCVV = errors.New("cvv must be a string or an integer")

func (c *CVV) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CVV(s)
		return nil
	}

	for _, b := range data {
		if b < '0' || b > '9' {
			return errInvalidCVV
		}
	}
	*c = CVV(data)
	return nil
}

func (c CVV) String() string {
	return string(c)
}
