// Package handler exposes the payment service over HTTP.
package handler

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PaymentService interface {
	Process(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Payment, bool, error)
}

type PaymentHandler struct {
	service PaymentService
	logger  *slog.Logger
}

func NewPaymentHandler(service PaymentService, logger *slog.Logger) *PaymentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/", h.HandleProcessPayment)
		r.Get("/{id}", h.HandleGetPayment)
	})
}
