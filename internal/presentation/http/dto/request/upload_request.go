package request

// UploadImageRequest carries the form fields sent next to the image file
type UploadImageRequest struct {
	Location string `form:"location" binding:"required,oneof=categories products banners"`
}
