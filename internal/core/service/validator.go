package service

import (
	"reflect"
	"strings"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/go-playground/validator"
)

// fieldMessages holds the user-facing message for each json field and
// failing validator tag. The empty tag is the fallback for that field.
var fieldMessages = map[string]map[string]string{
	"cardNumber": {
		"required": "Card number is required.",
		"min":      "Card number must be between 14 and 19 digits.",
		"max":      "Card number must be between 14 and 19 digits.",
		"digits":   "Card number must be numeric.",
	},
	"expiryMonth": {
		"required": "Expiry month is required.",
		"":         "Expiry month must be between 1 and 12.",
	},
	"expiryYear": {
		"": "Expiry year is required.",
	},
	"currency": {
		"required": "Currency is required.",
		"":         "Only USD, EUR, or GBP are supported.",
	},
	"amount": {
		"required": "Amount is required.",
		"":         "Amount must be a positive integer.",
	},
	"cvv": {
		"required": "CVV is required.",
		"":         "CVV must be 3 or 4 digits.",
	},
}

// PaymentValidator checks the structural rules of a payment request and then,
// separately, that the card has not expired.
type PaymentValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewPaymentValidator returns a validator reading the current time from now,
// or from time.Now when now is nil.
func NewPaymentValidator(now func() time.Time) *PaymentValidator {
	if now == nil {
		now = time.Now
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("digits", isDigits)
	_ = v.RegisterValidation("currency", isSupportedCurrency)

	return &PaymentValidator{validate: v, now: now}
}

// Validate returns a *domain.ValidationError listing every field violation,
// or an INVALID_EXPIRY_DATE domain error when the fields are well formed but
// the card expired before today.
func (pv *PaymentValidator) Validate(req domain.PaymentRequest) error {
	if err := pv.validate.Struct(req); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return domain.NewInternalError(err)
		}
		return toValidationError(fieldErrs)
	}

	if !domain.IsExpiryDateValid(req.ExpiryMonth, req.ExpiryYear, pv.now()) {
		return domain.NewInvalidExpiryDateError()
	}
	return nil
}

func toValidationError(fieldErrs validator.ValidationErrors) *domain.ValidationError {
	vErr := &domain.ValidationError{Violations: make([]domain.Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		vErr.Violations = append(vErr.Violations, domain.Violation{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}
	return vErr
}

func messageFor(field, tag string) string {
	msgs := fieldMessages[field]
	if msg, ok := msgs[tag]; ok {
		return msg
	}
	if msg, ok := msgs[""]; ok {
		return msg
	}
	return field + " is invalid."
}

func isDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSupportedCurrency(fl validator.FieldLevel) bool {
	code := domain.NormalizeCurrency(fl.Field().String())
	for _, c := range domain.SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
