package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopadmin-api/internal/application/service"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/response"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
)

// BannerHandler handles promotional banner requests
type BannerHandler struct {
	bannerService *service.BannerService
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(bannerService *service.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

func (h *BannerHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.bannerService.ListBanners(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Banners retrieved successfully", result)
}

func (h *BannerHandler) Create(c *gin.Context) {
	var req request.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	banner, err := h.bannerService.CreateBanner(c.Request.Context(), &service.CreateBannerInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, banner.Title+" added successfully", banner)
}
