package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/mocks"
	"feastly/order-svc/internal/service"
)

func TestRestaurantService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.Restaurant
		mockError error
		wantImage string
		wantErr   error
	}{
		{
			name:      "default image",
			input:     &domain.Restaurant{Name: "Mama Put", Location: "Lagos"},
			wantImage: service.DefaultRestaurantImage,
		},
		{
			name:      "explicit image",
			input:     &domain.Restaurant{Name: "Mama Put", ImageURL: "https://cdn.example.com/a.png"},
			wantImage: "https://cdn.example.com/a.png",
		},
		{
			name:      "database error",
			input:     &domain.Restaurant{Name: "Mama Put"},
			mockError: assert.AnError,
			wantErr:   assert.AnError,
		},
		{
			name:    "empty name",
			input:   &domain.Restaurant{Name: ""},
			wantErr: domain.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			svc := service.NewRestaurantService(repo, mocks.NewImageHost(t), logger.Discard())

			if testCase.wantErr != domain.ErrValidation {
				repo.On("CreateRestaurant", mock.Anything, testCase.input).Return(testCase.mockError).Once()
			}

			err := svc.Create(context.Background(), testCase.input)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, testCase.input.ID)
			assert.Equal(t, testCase.wantImage, testCase.input.ImageURL)
		})
	}
}

func TestRestaurantService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		image      string
		getErr     error
		rows       int64
		wantDelete bool
		wantErr    error
	}{
		{name: "hosted image removed", image: "https://res.cloudinary.com/x/image/upload/v1/feastly/a.png", rows: 1, wantDelete: true},
		{name: "default image kept", image: service.DefaultRestaurantImage, rows: 1},
		{name: "missing restaurant", getErr: domain.ErrNotFound, wantErr: domain.ErrNotFound},
		{name: "deleted concurrently", image: service.DefaultRestaurantImage, rows: 0, wantErr: domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			images := mocks.NewImageHost(t)
			svc := service.NewRestaurantService(repo, images, logger.Discard())

			if testCase.getErr != nil {
				repo.On("GetRestaurant", mock.Anything, "r-1").Return(nil, testCase.getErr).Once()
			} else {
				repo.On("GetRestaurant", mock.Anything, "r-1").Return(&domain.Restaurant{ID: "r-1", ImageURL: testCase.image}, nil).Once()
				repo.On("DeleteRestaurant", mock.Anything, "r-1").Return(testCase.rows, nil).Once()
			}
			if testCase.wantDelete {
				images.On("Delete", mock.Anything, testCase.image).Return(assert.AnError).Once()
			}

			err := svc.Delete(context.Background(), "r-1")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRestaurantService_UpdateImage(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	images := mocks.NewImageHost(t)
	svc := service.NewRestaurantService(repo, images, logger.Discard())

	repo.On("GetRestaurant", mock.Anything, "r-1").
		Return(&domain.Restaurant{ID: "r-1", ImageURL: "https://cdn.example.com/old.png"}, nil).Once()
	images.On("Upload", mock.Anything, "restaurant_r-1_front.png", mock.Anything).
		Return("https://cdn.example.com/new.png", nil).Once()
	repo.On("UpdateRestaurantImage", mock.Anything, "r-1", "https://cdn.example.com/new.png").Return(nil).Once()
	images.On("Delete", mock.Anything, "https://cdn.example.com/old.png").Return(nil).Once()

	url, err := svc.UpdateImage(context.Background(), "r-1", "front.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", url)
}

func TestRestaurantService_UpdateImageUploadFailureKeepsOld(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	images := mocks.NewImageHost(t)
	svc := service.NewRestaurantService(repo, images, logger.Discard())

	repo.On("GetRestaurant", mock.Anything, "r-1").
		Return(&domain.Restaurant{ID: "r-1", ImageURL: "https://cdn.example.com/old.png"}, nil).Once()
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	_, err := svc.UpdateImage(context.Background(), "r-1", "front.png", strings.NewReader("img"))
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "UpdateRestaurantImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuItemService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   *domain.MenuItem
		wantErr bool
	}{
		{name: "valid", input: &domain.MenuItem{RestaurantID: "r-1", Name: "Suya", Price: decimal.RequireFromString("7.50"), Available: true}},
		{name: "free item", input: &domain.MenuItem{RestaurantID: "r-1", Name: "Water", Price: decimal.Zero}},
		{name: "negative price", input: &domain.MenuItem{RestaurantID: "r-1", Name: "Suya", Price: decimal.NewFromInt(-1)}, wantErr: true},
		{name: "missing restaurant", input: &domain.MenuItem{Name: "Suya", Price: decimal.NewFromInt(1)}, wantErr: true},
		{name: "missing name", input: &domain.MenuItem{RestaurantID: "r-1", Price: decimal.NewFromInt(1)}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuItemRepository(t)
			svc := service.NewMenuItemService(repo, mocks.NewImageHost(t), logger.Discard())
			if !testCase.wantErr {
				repo.On("CreateMenuItem", mock.Anything, testCase.input).Return(nil).Once()
			}

			err := svc.Create(context.Background(), testCase.input)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, service.DefaultMenuItemImage, testCase.input.ImageURL)
		})
	}
}

func TestMenuItemService_Update(t *testing.T) {
	name := "Peppered Suya"
	empty := " "
	negative := decimal.NewFromInt(-3)

	tests := []struct {
		name    string
		patch   domain.MenuItemPatch
		repoErr error
		wantErr error
	}{
		{name: "partial patch", patch: domain.MenuItemPatch{Name: &name}},
		{name: "unknown item", patch: domain.MenuItemPatch{Name: &name}, repoErr: domain.ErrNotFound, wantErr: domain.ErrNotFound},
		{name: "blank name", patch: domain.MenuItemPatch{Name: &empty}, wantErr: domain.ErrValidation},
		{name: "negative price", patch: domain.MenuItemPatch{Price: &negative}, wantErr: domain.ErrValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuItemRepository(t)
			svc := service.NewMenuItemService(repo, mocks.NewImageHost(t), logger.Discard())
			if testCase.wantErr != domain.ErrValidation {
				repo.On("UpdateMenuItem", mock.Anything, "m-1", testCase.patch).Return(testCase.repoErr).Once()
			}

			err := svc.Update(context.Background(), "m-1", testCase.patch)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMenuItemService_DeleteKeepsDefaultImage(t *testing.T) {
	repo := mocks.NewMenuItemRepository(t)
	images := mocks.NewImageHost(t)
	svc := service.NewMenuItemService(repo, images, logger.Discard())

	repo.On("GetMenuItem", mock.Anything, "m-1").Return(&domain.MenuItem{ID: "m-1", ImageURL: service.DefaultMenuItemImage}, nil).Once()
	repo.On("DeleteMenuItem", mock.Anything, "m-1").Return(int64(1), nil).Once()

	require.NoError(t, svc.Delete(context.Background(), "m-1"))
	images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMenuItemService_ListNeverNil(t *testing.T) {
	repo := mocks.NewMenuItemRepository(t)
	svc := service.NewMenuItemService(repo, mocks.NewImageHost(t), logger.Discard())

	repo.On("ListMenuItems", mock.Anything, "r-1").Return(nil, nil).Once()

	items, err := svc.List(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.MenuItem{}, items)
}
