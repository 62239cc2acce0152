// Package service runs the payment pipeline: validation, the bank call and
// persistence of the outcome.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/ports"
	"github.com/google/uuid"
)

// RequestValidator is satisfied by *PaymentValidator.
type RequestValidator interface {
	Validate(req domain.PaymentRequest) error
}

type PaymentService struct {
	repo       ports.PaymentRepository
	bankClient ports.BankPort
	validator  RequestValidator
	logger     *slog.Logger
}

func NewPaymentService(
	repo ports.PaymentRepository,
	bankClient ports.BankPort,
	validator RequestValidator,
	logger *slog.Logger,
) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		repo:       repo,
		bankClient: bankClient,
		validator:  validator,
		logger:     logger,
	}
}

// Process validates req, submits it to the bank and stores the result. A
// record is stored for authorized, declined and unreachable outcomes; an
// unavailable bank, a validation failure or a cancelled ctx stores nothing.
func (s *PaymentService) Process(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	lastFour := domain.LastFour(req.CardNumber)

	outcome, err := s.bankClient.Submit(ctx, domain.NewBankPaymentRequest(req))
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			s.logger.Warn("bank call aborted", "last_four", lastFour, "error", err)
			return nil, domain.NewTimeoutError(err)
		}
		return nil, domain.NewInternalError(fmt.Errorf("bank submit: %w", err))
	}

	switch outcome.Kind {
	case domain.OutcomeAuthorized, domain.OutcomeDeclined:
	case domain.OutcomeUnavailable:
		s.logger.Error("acquiring bank unavailable", "last_four", lastFour)
		return nil, domain.NewBankUnavailableError()
	case domain.OutcomeUnreachable:
		s.logger.Warn("no usable bank response, recording payment as declined", "last_four", lastFour)
	default:
		return nil, domain.NewInternalError(fmt.Errorf("unknown bank outcome %s", outcome.Kind))
	}

	payment := domain.NewPayment(uuid.New(), req, outcome)
	if err := s.repo.Add(ctx, payment); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to store payment: %w", err))
	}

	s.logger.Info("payment processed",
		"payment_id", payment.ID,
		"status", payment.Status,
		"last_four", payment.CardNumberLastFour,
		"currency", payment.Currency,
		"amount", payment.Amount,
	)

	return payment, nil
}

// Get returns the stored payment for id. found is false when no payment has
// that id.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (payment *domain.Payment, found bool, err error) {
	payment, found, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, domain.NewInternalError(fmt.Errorf("failed to load payment: %w", err))
	}
	return payment, found, nil
}
