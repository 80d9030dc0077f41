package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/shopadmin-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "1700000000123_red-sneaker", ObjectName(at, "Red Sneaker.PNG"))
	assert.Equal(t, "1700000000123_passwd", ObjectName(at, "../../etc/passwd"))
	assert.Equal(t, "1700000000123_image", ObjectName(at, "???.jpg"))
}

func TestUploadImage(t *testing.T) {
	store := &recordingStorage{}
	svc := NewImageService(store)
	svc.now = func() time.Time { return time.UnixMilli(42) }

	url, err := svc.UploadImage(context.Background(), &UploadImageInput{
		File:     strings.NewReader("png-bytes"),
		Filename: "hero.png",
		Location: LocationBanners,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/banners/42_hero", url)
	assert.Equal(t, "banners", store.folder)
	assert.Equal(t, "42_hero", store.name)
	assert.Equal(t, "png-bytes", store.body)
}

func TestUploadImageRejectsUnknownLocation(t *testing.T) {
	svc := NewImageService(&recordingStorage{})

	_, err := svc.UploadImage(context.Background(), &UploadImageInput{
		File:     strings.NewReader(""),
		Filename: "x.png",
		Location: "avatars",
	})

	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	svc := NewImageService(nil)

	_, err := svc.UploadImage(context.Background(), &UploadImageInput{Location: LocationProducts})

	assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
}

func TestUploadImageWrapsStorageErrors(t *testing.T) {
	boom := errors.New("cloudinary: 500")
	svc := NewImageService(&recordingStorage{err: boom})

	_, err := svc.UploadImage(context.Background(), &UploadImageInput{
		File:     strings.NewReader(""),
		Filename: "x.png",
		Location: LocationCategories,
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, apperror.IsAppError(err))
}
