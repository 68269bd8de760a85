package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/notify"
)

type ReservationService struct {
	repo      ReservationRepository
	notifier  Notifier
	publisher EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

func NewReservationService(repo ReservationRepository, notifier Notifier, publisher EventPublisher, log *logger.Logger) *ReservationService {
	return &ReservationService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Create books a pending reservation. A user or restaurant that cannot be
// resolved only skips the booking email.
func (s *ReservationService) Create(ctx context.Context, res *domain.Reservation) error {
	var missing []string
	if strings.TrimSpace(res.UserID) == "" {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(res.RestaurantID) == "" {
		missing = append(missing, "restaurant_id")
	}
	if strings.TrimSpace(res.ReservationTime) == "" {
		missing = append(missing, "reservation_time")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or empty fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	res.ID = uuid.NewString()
	res.Status = domain.ReservationPending
	res.CreatedAt = s.now().UTC()

	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	s.log.Info(ctx, "reservation_created", "reservation stored", slog.String("reservation_id", res.ID))
	s.publish(ctx, domain.EventReservationCreated, res)

	contact, err := s.repo.GetContact(ctx, res.UserID, res.RestaurantID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.Warn(ctx, "reservation_notify", "user or restaurant not found, skipping booking email",
			slog.String("reservation_id", res.ID))
		return nil
	case err != nil:
		s.log.Error(ctx, "reservation_notify", "failed to resolve booking recipient", err,
			slog.String("reservation_id", res.ID))
		return nil
	}

	s.notifyReservation(ctx, res, contact, reservationBookedMessage)
	return nil
}

func (s *ReservationService) ListForUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	reservations, err := s.repo.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return reservations, nil
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status value %q", domain.ErrValidation, status)
	}

	rc, err := s.repo.GetReservationContext(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateReservationStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	rc.Reservation.Status = status
	s.publish(ctx, domain.EventReservationStatusChanged, &rc.Reservation)

	if msg, ok := reservationStatusMessages[status]; ok {
		s.notifyReservation(ctx, &rc.Reservation, &rc.Contact, msg)
	}
	return nil
}

func (s *ReservationService) notifyReservation(ctx context.Context, res *domain.Reservation, contact *domain.Contact, msg message) {
	subject, body, err := msg.render(messageData{
		UserName:        contact.UserName,
		RestaurantName:  contact.RestaurantName,
		ReservationTime: res.ReservationTime,
	})
	if err != nil {
		s.log.Error(ctx, "reservation_notify", "failed to render notification", err,
			slog.String("reservation_id", res.ID))
		return
	}

	err = s.notifier.Notify(ctx, notify.Notification{
		To:         contact.Email,
		Subject:    subject,
		HTML:       body,
		ArtifactID: res.ID,
		Kind:       notify.KindReservation,
	})
	if err != nil {
		s.log.Error(ctx, "reservation_notify", "notification rejected", err,
			slog.String("reservation_id", res.ID))
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res *domain.Reservation) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvent(ctx, domain.KafkaMessage{
		Type:         eventType,
		EntityID:     res.ID,
		RestaurantID: res.RestaurantID,
		UserID:       res.UserID,
		Status:       string(res.Status),
		Timestamp:    s.now().UTC(),
	})
	if err != nil {
		s.log.Error(ctx, "reservation_event", "failed to publish reservation event", err,
			slog.String("reservation_id", res.ID))
	}
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
