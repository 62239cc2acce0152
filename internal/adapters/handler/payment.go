package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

const maxRequestBody = 1 << 20

type PaymentResponse struct {
	ID                 uuid.UUID            `json:"id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Status             domain.PaymentStatus `json:"status" enums:"Authorized,Declined" example:"Authorized"`
	CardNumberLastFour string               `json:"cardNumberLastFour" example:"1111"`
	ExpiryMonth        int                  `json:"expiryMonth" example:"12"`
	ExpiryYear         int                  `json:"expiryYear" example:"2030"`
	Currency           string               `json:"currency" example:"GBP"`
	Amount             int64                `json:"amount" example:"250"`
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		Status:             p.Status,
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}

// HandleProcessPayment processes a card payment
// @Summary      Process a payment
// @Description  Validate a card payment, send it to the acquiring bank and store the outcome.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     ApiKey
// @Param        request  body      domain.PaymentRequest  true  "Card payment details"
// @Success      200      {object}  PaymentResponse        "Payment authorized or declined"
// @Failure      400      {object}  ErrorResponse          "Invalid payment request"
// @Failure      401      {object}  ErrorResponse          "Missing or invalid API key"
// @Failure      500      {object}  ErrorResponse          "Internal server error"
// @Failure      503      {object}  ErrorResponse          "Acquiring bank unavailable"
// @Failure      504      {object}  ErrorResponse          "Request timed out"
// @Router       /api/payments [post]
func (h *PaymentHandler) HandleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.respondWithError(w, r, domain.NewInvalidRequestError(err))
		return
	}

	payment, err := h.service.Process(r.Context(), req)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// HandleGetPayment returns a stored payment
// @Summary      Get a payment
// @Description  Look up a previously processed payment by its identifier.
// @Tags         payments
// @Produce      json
// @Security     ApiKey
// @Param        id   path      string           true  "Payment ID"  format(uuid)
// @Success      200  {object}  PaymentResponse  "Payment found"
// @Failure      401  {object}  ErrorResponse    "Missing or invalid API key"
// @Failure      404  "Payment not found"
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		// An id that is not a UUID cannot name a payment.
		w.WriteHeader(http.StatusNotFound)
		return
	}

	payment, found, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	respondWithJSON(w, http.StatusOK, toPaymentResponse(payment))
}
