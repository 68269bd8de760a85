package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"feastly/config"
	"feastly/logger"
	httpapi "feastly/order-svc/internal/api/http"
	"feastly/order-svc/internal/notify"
	"feastly/order-svc/internal/service"
	"feastly/order-svc/internal/storage"
	"feastly/telemetry"
)

func newImageHost(cfg *config.Config) (service.ImageHost, error) {
	if cfg.Images.CloudName == "" {
		return storage.NewDiskHost(cfg.Images.UploadDir, cfg.Images.UploadsPath), nil
	}
	return storage.NewCloudinaryHost(cfg.Images.CloudName, cfg.Images.APIKey, cfg.Images.APISecret, cfg.Images.Folder)
}

func newHandler(cfg *config.Config, repo *storage.PostgresRepository, images service.ImageHost,
	notifier service.Notifier, publisher service.EventPublisher, markers service.WebhookMarker, lg *logger.Logger) *httpapi.Handler {
	orders := service.NewOrderService(repo, notifier, publisher, lg)
	h := &httpapi.Handler{
		Users:        service.NewUserService(repo, service.BcryptHasher{}),
		Restaurants:  service.NewRestaurantService(repo, images, lg),
		MenuItems:    service.NewMenuItemService(repo, images, lg),
		Orders:       orders,
		Reservations: service.NewReservationService(repo, notifier, publisher, lg),
		Payments:     service.NewPaymentService(cfg.Paystack.SecretKey, orders, markers, lg),
		Log:          lg,
	}
	if _, ok := images.(*storage.DiskHost); ok {
		h.UploadsPath = cfg.Images.UploadsPath
		h.UploadDir = cfg.Images.UploadDir
	}
	return h
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8081"
	}

	lg := logger.NewLogger("order-svc")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "order-svc", telemetry.Config{
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		Stdout:       cfg.Tracing.Stdout,
	})
	if err != nil {
		log.Fatal("Failed to init tracing:", err)
	}
	defer shutdownTracing(context.Background())

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()

	images, err := newImageHost(cfg)
	if err != nil {
		log.Fatal("Failed to init image host:", err)
	}

	if cfg.Paystack.SecretKey == "" {
		lg.Warn(ctx, "startup", "PAYSTACK_SECRET_KEY is not set; every webhook will be rejected")
	}

	mailer := notify.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	dispatcher := notify.NewDispatcher(cfg.Notify.BaseURL, cfg.Notify.TempDir, notify.DefaultQRGenerator{}, mailer, lg)
	defer dispatcher.Wait()

	handler := newHandler(cfg, repo, images, dispatcher,
		storage.NewKafkaPublisher(writer),
		storage.NewWebhookMarkers(rdb, cfg.Paystack.MarkerTTL), lg)

	srv := httpapi.NewServer(cfg.HTTP.Addr, httpapi.NewRouter(handler))
	if err := httpapi.StartServer(ctx, srv, lg); err != nil {
		lg.Error(ctx, "server_stop", "server stopped with error", err)
	}
}
