package repo

import (
	"context"
	"errors"
	"sync"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/ports"
	"github.com/google/uuid"
)

var errNilPayment = errors.New("payment is nil")

// MemoryPaymentRepository keeps payments in a process-local map. Values are
// copied on the way in and out so a reader never shares memory with a writer.
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]domain.Payment
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{
		payments: make(map[uuid.UUID]domain.Payment),
	}
}

var _ ports.PaymentRepository = (*MemoryPaymentRepository)(nil)

func (r *MemoryPaymentRepository) Add(ctx context.Context, p *domain.Payment) error {
	if p == nil {
		return errNilPayment
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[p.ID] = *p
	return nil
}

func (r *MemoryPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

// Len returns the number of stored payments.
func (r *MemoryPaymentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}
