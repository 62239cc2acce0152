package ports

import (
	"context"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// BankPort defines the behavior of the acquiring bank.
//
// Submit classifies every bank reply into a BankOutcome. A non-nil error is
// reserved for conditions that are not bank decisions at all, such as the
// caller cancelling the request.
type BankPort interface {
	Submit(ctx context.Context, req domain.BankPaymentRequest) (domain.BankOutcome, error)
}
