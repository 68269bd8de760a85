package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
)

type Kind string

const (
	KindOrder       Kind = "order"
	KindReservation Kind = "reservation"
)

func (k Kind) Valid() bool {
	return k == KindOrder || k == KindReservation
}

type Notification struct {
	To         string
	Subject    string
	HTML       string
	ArtifactID string
	Kind       Kind
}

// Dispatcher validates notifications synchronously and delivers them on a
// background goroutine. Delivery failures are logged, never returned.
type Dispatcher struct {
	baseURL string
	tempDir string
	qr      QREncoder
	mailer  Mailer
	log     *logger.Logger
	tracer  trace.Tracer
	wg      sync.WaitGroup
}

func NewDispatcher(baseURL, tempDir string, qr QREncoder, mailer Mailer, log *logger.Logger) *Dispatcher {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Dispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		tempDir: tempDir,
		qr:      qr,
		mailer:  mailer,
		log:     log,
		tracer:  otel.Tracer("feastly/order-svc/notify"),
	}
}

// PayloadURL is the deep link encoded in the QR code: {base}/{kind}s/{id}.
func (d *Dispatcher) PayloadURL(kind Kind, artifactID string) (string, error) {
	if artifactID == "" {
		return "", fmt.Errorf("%w: artifact id is required", domain.ErrValidation)
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown notification kind %q", domain.ErrValidation, kind)
	}
	return fmt.Sprintf("%s/%ss/%s", d.baseURL, kind, artifactID), nil
}

func (d *Dispatcher) Notify(ctx context.Context, n Notification) error {
	payload, err := d.PayloadURL(n.Kind, n.ArtifactID)
	if err != nil {
		return err
	}
	if n.To == "" {
		return fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}

	deliveryCtx := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(deliveryCtx, n, payload)
	}()
	return nil
}

// Wait blocks until every in-flight delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, n Notification, payload string) {
	ctx, span := d.tracer.Start(ctx, "notify.deliver", trace.WithAttributes(
		attribute.String("notify.kind", string(n.Kind)),
		attribute.String("notify.artifact_id", n.ArtifactID),
	))
	defer span.End()

	if err := d.send(ctx, n, payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		d.log.Error(ctx, "notify_failed", "failed to deliver notification", err,
			slog.String("kind", string(n.Kind)),
			slog.String("artifact_id", n.ArtifactID),
		)
		return
	}
	d.log.Info(ctx, "notify_sent", "notification delivered",
		slog.String("kind", string(n.Kind)),
		slog.String("artifact_id", n.ArtifactID),
	)
}

func (d *Dispatcher) send(ctx context.Context, n Notification, payload string) error {
	png, err := d.qr.Encode(payload)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	file, err := os.CreateTemp(d.tempDir, "qr_"+n.ArtifactID+"_*.png")
	if err != nil {
		return fmt.Errorf("stage qr: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.Write(png); err != nil {
		file.Close()
		return fmt.Errorf("stage qr: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("stage qr: %w", err)
	}

	return d.mailer.Send(ctx, Mail{
		To:              n.To,
		Subject:         n.Subject,
		HTML:            n.HTML,
		InlineImagePath: path,
	})
}
