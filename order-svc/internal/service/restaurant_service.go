package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
)

const DefaultRestaurantImage = "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?q=80&w=870&auto=format&fit=crop"

type RestaurantService struct {
	repo   RestaurantRepository
	images ImageHost
	log    *logger.Logger
}

func NewRestaurantService(repo RestaurantRepository, images ImageHost, log *logger.Logger) *RestaurantService {
	return &RestaurantService{repo: repo, images: images, log: log}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	rest.ID = uuid.NewString()
	if rest.ImageURL == "" {
		rest.ImageURL = DefaultRestaurantImage
	}
	rest.CreatedAt = time.Now().UTC()
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

// Update rewrites the descriptive fields. The image is only changed through UpdateImage.
func (s *RestaurantService) Update(ctx context.Context, rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return s.repo.UpdateRestaurant(ctx, rest)
}

func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return err
	}
	rows, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: restaurant %s", domain.ErrNotFound, id)
	}
	dropHostedImage(ctx, s.images, s.log, rest.ImageURL, DefaultRestaurantImage)
	return nil
}

func (s *RestaurantService) UpdateImage(ctx context.Context, id, filename string, image io.Reader) (string, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return "", err
	}

	imageURL, err := s.images.Upload(ctx, "restaurant_"+id+"_"+filename, image)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if err := s.repo.UpdateRestaurantImage(ctx, id, imageURL); err != nil {
		return "", fmt.Errorf("update restaurant image: %w", err)
	}

	if rest.ImageURL != imageURL {
		dropHostedImage(ctx, s.images, s.log, rest.ImageURL, DefaultRestaurantImage)
	}
	return imageURL, nil
}

// dropHostedImage removes a previously hosted image. The shared fallback
// image and empty URLs are never deleted; failures are only logged.
func dropHostedImage(ctx context.Context, images ImageHost, log *logger.Logger, imageURL, fallback string) {
	if images == nil || imageURL == "" || imageURL == fallback {
		return
	}
	if err := images.Delete(ctx, imageURL); err != nil {
		log.Error(ctx, "image_delete", "failed to delete hosted image", err, slog.String("image_url", imageURL))
	}
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
