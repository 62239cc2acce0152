// Package middleware wraps the gateway's HTTP handlers.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
)

// Recovery creates middleware that recovers from panics and returns 500
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error(
						"panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					err := domain.NewInternalError(fmt.Errorf("panic: %v", rec))
					handler.WriteError(w, r, err, logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
