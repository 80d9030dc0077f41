package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopadmin-api/internal/application/service"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler serves the order analytics dashboard
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Get handles computing analytics over every stored order
func (h *AnalyticsHandler) Get(c *gin.Context) {
	result, err := h.analyticsService.GetAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics retrieved successfully", result)
}
