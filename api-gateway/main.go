package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feastly/api-gateway/internal/gateway"
	"feastly/config"
	"feastly/logger"
	"feastly/telemetry"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}

	lg := logger.NewLogger("api-gateway")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "api-gateway", telemetry.Config{
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		Stdout:       cfg.Tracing.Stdout,
	})
	if err != nil {
		log.Fatal("Failed to init tracing:", err)
	}
	defer shutdownTracing(context.Background())

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: cfg.Services.OrderSvcURL,
		StatsSvcURL: cfg.Services.StatsSvcURL,
	}, gateway.NewTracedClient(), lg)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           gw.SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	lg.Info(ctx, "server_start", "API Gateway starting", slog.String("addr", cfg.HTTP.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error(ctx, "server_stop", "server stopped with error", err)
	}
}
