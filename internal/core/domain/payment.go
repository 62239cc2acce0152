// Package domain holds the payment record, the inbound request and the bank
// exchange types shared by the core and its adapters.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// PaymentStatus is the terminal outcome of a processed payment.
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
)

// Payment is the record persisted after a payment was sent to the bank.
// It never carries the full card number or the CVV.
type Payment struct {
	ID                 uuid.UUID
	Status             PaymentStatus
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64

	// AuthorizationCode is the bank token for authorized payments, empty otherwise.
	AuthorizationCode string
}

// NewPayment builds the record for req from the bank outcome. Unreachable
// outcomes are recorded as declined; callers must not pass Unavailable.
func NewPayment(id uuid.UUID, req PaymentRequest, outcome BankOutcome) *Payment {
	p := &Payment{
		ID:                 id,
		Status:             StatusDeclined,
		CardNumberLastFour: LastFour(req.CardNumber),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           NormalizeCurrency(req.Currency),
		Amount:             req.Amount,
	}

	if outcome.Kind == OutcomeAuthorized {
		p.Status = StatusAuthorized
		p.AuthorizationCode = outcome.AuthorizationCode
	}

	return p
}

// LastFour returns the last four characters of a card number, or the whole
// value when it is shorter.
func LastFour(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

// NormalizeCurrency upper-cases an ISO currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}
