// Package bank is the HTTP adapter for the acquiring bank.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBody = 1 << 20

type HTTPBankClient struct {
	paymentsURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

var _ ports.BankPort = (*HTTPBankClient)(nil)

// NewBankClient builds a client whose transport retries transient failures
// per retryCfg. cfg.RequestTimeout bounds one logical call including retries
// and cfg.AttemptTimeout bounds the wait for each reply's headers.
func NewBankClient(cfg config.BankConfig, retryCfg config.RetryConfig, logger *slog.Logger) *HTTPBankClient {
	if logger == nil {
		logger = slog.Default()
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.ResponseHeaderTimeout = cfg.AttemptTimeout

	return &HTTPBankClient{
		paymentsURL: strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.TrimLeft(cfg.PaymentsPath, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: otelhttp.NewTransport(NewRetryTransport(base, retryCfg, logger)),
		},
		logger: logger,
	}
}

// Submit sends req to the bank and classifies the reply. The returned error
// is non-nil only when ctx ended or the request could not be built; every
// bank-side failure is reported as an outcome.
func (c *HTTPBankClient) Submit(ctx context.Context, req domain.BankPaymentRequest) (domain.BankOutcome, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return domain.BankOutcome{}, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.paymentsURL, bytes.NewReader(jsonData))
	if err != nil {
		return domain.BankOutcome{}, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.BankOutcome{}, fmt.Errorf("bank call aborted: %w", ctxErr)
		}
		c.logger.Warn("bank unreachable", "error", err)
		return domain.Unreachable(), nil
	}
	defer resp.Body.Close()

	return c.classify(resp), nil
}

func (c *HTTPBankClient) classify(resp *http.Response) domain.BankOutcome {
	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		c.logger.Error("acquiring bank reported unavailable", "status", resp.StatusCode)
		return domain.Unavailable()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warn("unexpected bank status", "status", resp.StatusCode)
		return domain.Unreachable()
	}

	var bankResp domain.BankPaymentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&bankResp); err != nil {
		c.logger.Warn("unusable bank response", "status", resp.StatusCode, "error", err)
		return domain.Unreachable()
	}

	if bankResp.Authorized {
		return domain.Authorized(bankResp.AuthorizationCode)
	}
	return domain.Declined()
}
