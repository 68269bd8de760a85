package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"feastly/config"
	"feastly/logger"
	httpapi "feastly/stats-svc/internal/api/http"
	"feastly/stats-svc/internal/service"
	"feastly/stats-svc/internal/storage"
	"feastly/telemetry"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8083"
	}

	lg := logger.NewLogger("stats-svc")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "stats-svc", telemetry.Config{
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		Stdout:       cfg.Tracing.Stdout,
	})
	if err != nil {
		log.Fatal("Failed to init tracing:", err)
	}
	defer shutdownTracing(context.Background())

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store, lg)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Start(ctx)
	}()

	handler := httpapi.NewHandler(service.NewStatsService(store), lg)
	if err := httpapi.StartServer(ctx, cfg.HTTP.Addr, httpapi.NewRouter(handler), lg); err != nil {
		lg.Error(ctx, "server_stop", "server stopped with error", err)
		stop()
	}
	wg.Wait()
}
