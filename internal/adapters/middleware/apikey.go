package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// APIKey rejects requests whose cfg.Header does not carry cfg.APIKey. Paths
// listed in exempt pass through unchecked.
func APIKey(cfg config.AuthConfig, logger *slog.Logger, exempt ...string) func(http.Handler) http.Handler {
	open := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		open[p] = struct{}{}
	}
	want := []byte(cfg.APIKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := open[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(cfg.Header)
			if got == "" {
				handler.WriteError(w, r, domain.NewUnauthorizedError(domain.MsgAPIKeyMissing), logger)
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				logger.Warn("rejected request with invalid api key",
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				handler.WriteError(w, r, domain.NewUnauthorizedError(domain.MsgAPIKeyInvalid), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
