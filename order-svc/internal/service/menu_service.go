package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
)

const DefaultMenuItemImage = "https://img.freepik.com/free-psd/3d-rendering-delicious-cheese-burger_23-2149108546.jpg?semt=ais_hybrid"

type MenuItemService struct {
	repo   MenuItemRepository
	images ImageHost
	log    *logger.Logger
}

func NewMenuItemService(repo MenuItemRepository, images ImageHost, log *logger.Logger) *MenuItemService {
	return &MenuItemService{repo: repo, images: images, log: log}
}

func (s *MenuItemService) Create(ctx context.Context, item *domain.MenuItem) error {
	if strings.TrimSpace(item.RestaurantID) == "" || strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: restaurant_id, name and price are required", domain.ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	item.ID = uuid.NewString()
	if item.ImageURL == "" {
		item.ImageURL = DefaultMenuItemImage
	}
	item.CreatedAt = time.Now().UTC()
	return s.repo.CreateMenuItem(ctx, item)
}

// List returns every menu item, or only those of restaurantID when it is set.
func (s *MenuItemService) List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

func (s *MenuItemService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuItemService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return s.repo.UpdateMenuItem(ctx, id, patch)
}

func (s *MenuItemService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return err
	}
	rows, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}
	dropHostedImage(ctx, s.images, s.log, item.ImageURL, DefaultMenuItemImage)
	return nil
}

func (s *MenuItemService) UpdateImage(ctx context.Context, id, filename string, image io.Reader) (string, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return "", err
	}

	imageURL, err := s.images.Upload(ctx, "menu_item_"+id+"_"+filename, image)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if err := s.repo.UpdateMenuItemImage(ctx, id, imageURL); err != nil {
		return "", fmt.Errorf("update menu item image: %w", err)
	}

	if item.ImageURL != imageURL {
		dropHostedImage(ctx, s.images, s.log, item.ImageURL, DefaultMenuItemImage)
	}
	return imageURL, nil
}

var _ MenuItemServiceInterface = (*MenuItemService)(nil)
