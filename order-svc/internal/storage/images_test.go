package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feastly/order-svc/internal/storage"
)

func TestPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "versioned with folder", url: "https://res.cloudinary.com/demo/image/upload/v1712/feastly/restaurant_r-1_front.png", want: "feastly/restaurant_r-1_front"},
		{name: "no version", url: "https://res.cloudinary.com/demo/image/upload/sample.jpg", want: "sample"},
		{name: "foreign host", url: "https://images.unsplash.com/photo-1517248135467", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, storage.PublicID(testCase.url))
		})
	}
}

func TestDiskHost_UploadAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	host := storage.NewDiskHost(dir, "/uploads/")
	ctx := context.Background()

	url, err := host.Upload(ctx, "../restaurant_r-1_front.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/restaurant_r-1_front.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "restaurant_r-1_front.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	require.NoError(t, host.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, "restaurant_r-1_front.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, host.Delete(ctx, url), "deleting twice is a no-op")
	assert.NoError(t, host.Delete(ctx, "https://cdn.example.com/x.png"))
}

func TestDiskHost_CancelledContext(t *testing.T) {
	host := storage.NewDiskHost(t.TempDir(), "/uploads/")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := host.Upload(ctx, "a.png", strings.NewReader("png"))
	assert.ErrorIs(t, err, context.Canceled)
}
