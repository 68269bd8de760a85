package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"feastly/logger"
	"feastly/stats-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *logger.Logger
	events metric.Int64Counter
	now    func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface, log *logger.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
		events: eventCounter(otel.Meter("feastly/stats-svc")),
		now:    time.Now,
	}
}

// WithMeter records the stats.events counter through meter instead of the
// global meter provider.
func (c *Consumer) WithMeter(meter metric.Meter) *Consumer {
	c.events = eventCounter(meter)
	return c
}

func eventCounter(meter metric.Meter) metric.Int64Counter {
	events, err := meter.Int64Counter("stats.events",
		metric.WithDescription("Lifecycle events seen by the stats consumer, by type and outcome."))
	if err != nil {
		return noop.Int64Counter{}
	}
	return events
}

func (c *Consumer) count(ctx context.Context, msg domain.KafkaMessage, outcome string) {
	c.events.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", msg.Type),
		attribute.String("outcome", outcome),
	))
}

// Start reads events until ctx is cancelled or the reader is closed. Broken
// payloads and store failures are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Log.Info(ctx, "consumer_start", "Starting stats consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.Log.Info(ctx, "consumer_stop", "stats consumer stopped")
				return
			}
			c.Log.Error(ctx, "consumer_read", "Error reading message", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Log.Error(ctx, "consumer_decode", "Error unmarshaling message", err,
				slog.String("key", string(message.Key)))
			continue
		}

		if err := c.ProcessEvent(ctx, msg); err != nil {
			c.Log.Error(ctx, "consumer_process", "Error processing event", err,
				slog.String("type", msg.Type),
				slog.String("entity_id", msg.EntityID))
		}
	}
}

// ProcessEvent folds one lifecycle event into the counters. Event types other
// than order and reservation lifecycle changes are ignored.
func (c *Consumer) ProcessEvent(ctx context.Context, msg domain.KafkaMessage) error {
	if msg.Kind() == "" {
		c.Log.Debug(ctx, "consumer_skip", "ignoring event", slog.String("type", msg.Type))
		c.count(ctx, msg, "ignored")
		return nil
	}
	if msg.RestaurantID == "" {
		c.Log.Warn(ctx, "consumer_skip", "event without restaurant",
			slog.String("type", msg.Type), slog.String("entity_id", msg.EntityID))
		c.count(ctx, msg, "ignored")
		return nil
	}

	if err := c.Store.IncrementStatus(ctx, msg.RestaurantID, msg.CounterField()); err != nil {
		c.count(ctx, msg, "failed")
		return err
	}

	if msg.IsCreation() {
		day := msg.Timestamp
		if day.IsZero() {
			day = c.now()
		}
		if err := c.Store.IncrementDaily(ctx, day, msg.RestaurantID); err != nil {
			c.count(ctx, msg, "failed")
			return err
		}
	}
	c.count(ctx, msg, "counted")
	return nil
}
