package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feastly/config"
	"feastly/logger"
	httpapi "feastly/order-svc/internal/api/http"
	"feastly/order-svc/internal/mocks"
	"feastly/order-svc/internal/storage"
)

func TestNewImageHostFallsBackToDisk(t *testing.T) {
	cfg := config.Default()

	host, err := newImageHost(cfg)
	require.NoError(t, err)
	assert.IsType(t, &storage.DiskHost{}, host)
}

func TestNewImageHostUsesCloudinary(t *testing.T) {
	cfg := config.Default()
	cfg.Images.CloudName = "demo"
	cfg.Images.APIKey = "key"
	cfg.Images.APISecret = "secret"

	host, err := newImageHost(cfg)
	require.NoError(t, err)
	assert.IsType(t, &storage.CloudinaryHost{}, host)
}

func TestUploadsAreServedForDiskHost(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := config.Default()
	cfg.Images.UploadDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Images.UploadDir, "a.png"), []byte("png"), 0644))

	images, err := newImageHost(cfg)
	require.NoError(t, err)

	h := newHandler(cfg, storage.NewPostgresRepository(db), images, mocks.NewNotifier(t), nil, nil, logger.Discard())
	router := httpapi.NewRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/a.png", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())
}
