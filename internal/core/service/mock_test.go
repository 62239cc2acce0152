package service

import (
	"context"
	"sync"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBankPort struct {
	mock.Mock
}

func (m *MockBankPort) Submit(ctx context.Context, req domain.BankPaymentRequest) (domain.BankOutcome, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.BankOutcome), args.Error(1)
}

// MockPaymentRepository stores payments in a map and lets a test override Add.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.Payment

	AddFn func(ctx context.Context, p *domain.Payment) error
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{payments: make(map[uuid.UUID]*domain.Payment)}
}

func (m *MockPaymentRepository) Add(ctx context.Context, p *domain.Payment) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, false, nil
	}
	cp := *p
	return &cp, true, nil
}

func (m *MockPaymentRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}
