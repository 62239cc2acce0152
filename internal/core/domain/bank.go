package domain

import "fmt"

// BankPaymentRequest is the acquiring bank wire body.
type BankPaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// NewBankPaymentRequest maps a validated request to the wire body. The card
// number is carried unmasked.
func NewBankPaymentRequest(req PaymentRequest) BankPaymentRequest {
	return BankPaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: FormatExpiryDate(req.ExpiryMonth, req.ExpiryYear),
		Currency:   NormalizeCurrency(req.Currency),
		Amount:     req.Amount,
		CVV:        req.CVV.String(),
	}
}

// FormatExpiryDate renders MM/YYYY.
func FormatExpiryDate(month, year int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}

// BankPaymentResponse is the acquiring bank wire reply.
type BankPaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// OutcomeKind discriminates a BankOutcome.
type OutcomeKind int

const (
	// OutcomeDeclined is the zero value so an unset outcome never authorizes.
	OutcomeDeclined OutcomeKind = iota
	OutcomeAuthorized
	// OutcomeUnavailable means the bank explicitly reported it is overloaded.
	OutcomeUnavailable
	// OutcomeUnreachable means no usable reply was obtained after retries.
	OutcomeUnreachable
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAuthorized:
		return "authorized"
	case OutcomeDeclined:
		return "declined"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// BankOutcome is the classified result of one bank submission.
type BankOutcome struct {
	Kind              OutcomeKind
	AuthorizationCode string
}

func Authorized(code string) BankOutcome {
	return BankOutcome{Kind: OutcomeAuthorized, AuthorizationCode: code}
}

func Declined() BankOutcome {
	return BankOutcome{Kind: OutcomeDeclined}
}

func Unavailable() BankOutcome {
	return BankOutcome{Kind: OutcomeUnavailable}
}

func Unreachable() BankOutcome {
	return BankOutcome{Kind: OutcomeUnreachable}
}
