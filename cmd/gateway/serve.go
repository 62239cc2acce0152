package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/bank"
	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/middleware"
	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/repo"
	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the payment API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger := cfg.Logger.NewLogger()
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, logger)
		},
	}
}

func newPaymentService(cfg *config.Config, logger *slog.Logger) *service.PaymentService {
	paymentRepo := repo.NewMemoryPaymentRepository()
	bankClient := bank.NewBankClient(cfg.BankClient, cfg.Retry, logger)
	validator := service.NewPaymentValidator(nil)

	return service.NewPaymentService(paymentRepo, bankClient, validator, logger)
}

// newRouter assembles the HTTP stack. Docs and the liveness probe skip the
// API key check.
func newRouter(cfg *config.Config, logger *slog.Logger, svc handler.PaymentService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.APIKey(cfg.Auth, logger,
		handler.SwaggerDocPath,
		handler.OpenAPIDocPath,
		handler.LivePath,
	))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	handler.RegisterDocsRoutes(r)
	handler.NewPaymentHandler(svc, logger).RegisterRoutes(r)

	return otelhttp.NewHandler(r, "gateway")
}

func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"bank_url", cfg.BankClient.BaseURL,
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      newRouter(cfg, logger, newPaymentService(cfg, logger)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited")
	return nil
}
