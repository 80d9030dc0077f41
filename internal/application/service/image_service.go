package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sangkips/shopadmin-api/pkg/apperror"
	"github.com/sangkips/shopadmin-api/pkg/utils"
)

// Upload locations accepted by the image service
const (
	LocationCategories = "categories"
	LocationProducts   = "products"
	LocationBanners    = "banners"
)

var uploadLocations = map[string]bool{
	LocationCategories: true,
	LocationProducts:   true,
	LocationBanners:    true,
}

// ImageStorage persists image bytes and returns a public URL
type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader, name, folder string) (string, error)
}

// ImageService uploads catalog and banner images
type ImageService struct {
	storage ImageStorage
	now     func() time.Time
}

// NewImageService creates a new image service. storage may be nil when
// blob storage is not configured; uploads then fail with 503.
func NewImageService(storage ImageStorage) *ImageService {
	return &ImageService{storage: storage, now: time.Now}
}

// UploadImageInput represents an image upload
type UploadImageInput struct {
	File     io.Reader
	Filename string
	Location string
}

// UploadImage stores the file as "<unix-millis>_<name>" under location and returns its URL
func (s *ImageService) UploadImage(ctx context.Context, input *UploadImageInput) (string, error) {
	if s.storage == nil {
		return "", apperror.ErrStorageUnavailable
	}
	if !uploadLocations[input.Location] {
		return "", apperror.NewBadRequestError("Unknown upload location: " + input.Location)
	}

	name := ObjectName(s.now(), input.Filename)
	url, err := s.storage.Upload(ctx, input.File, name, input.Location)
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", input.Location, name, err)
	}
	return url, nil
}

// ObjectName builds the stored object name for an uploaded file. The
// extension is dropped since the storage backend derives the format.
func ObjectName(at time.Time, filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := utils.Slugify(base)
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("%d_%s", at.UnixMilli(), slug)
}
