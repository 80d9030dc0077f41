package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopadmin-api/internal/application/service"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/response"
)

// UploadHandler accepts image uploads for the catalog and banners
type UploadHandler struct {
	imageService *service.ImageService
	maxSize      int64
}

// NewUploadHandler creates a new upload handler. Request bodies larger than
// maxSize bytes are rejected.
func NewUploadHandler(imageService *service.ImageService, maxSize int64) *UploadHandler {
	return &UploadHandler{imageService: imageService, maxSize: maxSize}
}

// Upload stores the multipart "image" file under the "location" folder and
// returns its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize)
	}

	var req request.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "Image exceeds the upload size limit")
			return
		}
		bindError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read image file")
		return
	}
	defer file.Close()

	url, err := h.imageService.UploadImage(c.Request.Context(), &service.UploadImageInput{
		File:     file,
		Filename: fileHeader.Filename,
		Location: req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Image uploaded successfully", gin.H{
		"url":      url,
		"location": req.Location,
	})
}
