package ports

import (
	"context"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
)

// PaymentRepository stores completed payments keyed by ID. Implementations
// must be safe for concurrent use.
type PaymentRepository interface {
	// Add inserts or replaces the payment with the same ID.
	Add(ctx context.Context, payment *domain.Payment) error
	// FindByID reports found=false when no payment has the ID.
	FindByID(ctx context.Context, id uuid.UUID) (payment *domain.Payment, found bool, err error)
}
