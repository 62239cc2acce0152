package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

const msgValidationFailed = "One or more validation errors occurred."

type ErrorResponse struct {
	StatusCode int                `json:"statusCode" example:"400"`
	Code       string             `json:"code" example:"VALIDATION_FAILED"`
	Message    string             `json:"message" example:"One or more validation errors occurred."`
	Errors     []domain.Violation `json:"errors,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// NewErrorResponse maps err to its HTTP status and body. Errors that are not
// domain errors become a generic 500.
func NewErrorResponse(err error) ErrorResponse {
	if vErr, ok := domain.IsValidationError(err); ok {
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       domain.ErrCodeValidationFailed,
			Message:    msgValidationFailed,
			Errors:     vErr.Violations,
		}
	}

	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return internalErrorResponse()
	}

	resp := ErrorResponse{Code: domainErr.Code, Message: domainErr.Message}
	switch domainErr.Code {
	case domain.ErrCodeInvalidExpiryDate, domain.ErrCodeInvalidRequest, domain.ErrCodeValidationFailed:
		resp.StatusCode = http.StatusBadRequest
	case domain.ErrCodeUnauthorized:
		resp.StatusCode = http.StatusUnauthorized
	case domain.ErrCodePaymentNotFound:
		resp.StatusCode = http.StatusNotFound
	case domain.ErrCodeBankUnavailable:
		resp.StatusCode = http.StatusServiceUnavailable
	case domain.ErrCodeTimeout:
		resp.StatusCode = http.StatusGatewayTimeout
	default:
		return internalErrorResponse()
	}
	return resp
}

func internalErrorResponse() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       domain.ErrCodeInternal,
		Message:    domain.MsgInternal,
	}
}

// WriteError writes the JSON body for err. Server side failures are logged
// with the underlying cause.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	resp := NewErrorResponse(err)
	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", resp.StatusCode,
			"error", err,
		)
	}
	respondWithJSON(w, resp.StatusCode, resp)
}

func (h *PaymentHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, r, err, h.logger)
}
