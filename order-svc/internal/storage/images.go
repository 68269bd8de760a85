package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryHost stores images on Cloudinary under Folder.
type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	Folder string
}

func NewCloudinaryHost(cloudName, apiKey, apiSecret, folder string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld, Folder: folder}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	res, err := h.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   h.Folder,
		PublicID: strings.TrimSuffix(name, path.Ext(name)),
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete destroys the asset behind imageURL. URLs that do not point at a
// Cloudinary upload are ignored.
func (h *CloudinaryHost) Delete(ctx context.Context, imageURL string) error {
	publicID := PublicID(imageURL)
	if publicID == "" {
		return nil
	}
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+/`)

// PublicID extracts the folder-qualified public id from a Cloudinary delivery
// URL, e.g. ".../image/upload/v17/feastly/a.png" gives "feastly/a".
func PublicID(imageURL string) string {
	_, rest, ok := strings.Cut(imageURL, "/upload/")
	if !ok || rest == "" {
		return ""
	}
	rest = versionSegment.ReplaceAllString(rest, "")
	return strings.TrimSuffix(rest, path.Ext(rest))
}

// DiskHost keeps images in a local directory served under URLPrefix.
type DiskHost struct {
	Dir       string
	URLPrefix string
}

func NewDiskHost(dir, urlPrefix string) *DiskHost {
	return &DiskHost{Dir: dir, URLPrefix: urlPrefix}
}

func (h *DiskHost) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(h.Dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := filepath.Base(name)
	dst, err := os.Create(filepath.Join(h.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return h.URLPrefix + filename, nil
}

func (h *DiskHost) Delete(_ context.Context, imageURL string) error {
	if !strings.HasPrefix(imageURL, h.URLPrefix) {
		return nil
	}
	err := os.Remove(filepath.Join(h.Dir, filepath.Base(strings.TrimPrefix(imageURL, h.URLPrefix))))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
