package bank

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/cenkalti/backoff/v4"
)

// maxBufferedBody caps how much of a retryable reply is kept while the next
// attempt is made.
const maxBufferedBody = 64 << 10

// RetryTransport retries a request on transport errors and on transient
// status codes. The delay before retry n (zero based) is BaseDelay * 2^n.
// When retries run out on a transient status, the last reply is returned so
// the caller can inspect it.
type RetryTransport struct {
	next       http.RoundTripper
	baseDelay  time.Duration
	maxRetries int
	logger     *slog.Logger
}

func NewRetryTransport(next http.RoundTripper, cfg config.RetryConfig, logger *slog.Logger) *RetryTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryTransport{
		next:       next,
		baseDelay:  cfg.BaseDelay,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// A body that cannot be replayed gets one attempt.
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	var (
		resp    *http.Response
		attempt int
	)

	operation := func() error {
		attempt++
		r, err := cloneRequest(req)
		if err != nil {
			return backoff.Permanent(err)
		}

		res, err := t.next.RoundTrip(r)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}

		if resp != nil {
			resp.Body.Close()
		}
		resp = res

		if isRetryableStatus(res.StatusCode) {
			if err := bufferBody(res); err != nil {
				return err
			}
			return newBankError(res)
		}
		return nil
	}

	notify := func(err error, delay time.Duration) {
		t.logger.Warn("retrying bank call",
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
	}

	err := backoff.RetryNotify(operation, t.policy(req), notify)
	if err == nil {
		return resp, nil
	}

	var bankErr *BankError
	if errors.As(err, &bankErr) && resp != nil && ctx.Err() == nil {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}
	return nil, err
}

func (t *RetryTransport) policy(req *http.Request) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = t.baseDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = t.baseDelay << t.maxRetries
	exp.MaxElapsedTime = 0
	exp.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(t.maxRetries)), req.Context())
}

func cloneRequest(req *http.Request) (*http.Request, error) {
	r := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		r.Body = body
	}
	return r, nil
}

// bufferBody reads the reply into memory and releases the connection.
func bufferBody(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBufferedBody))
	resp.Body.Close()
	if err != nil {
		return err
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return nil
}
