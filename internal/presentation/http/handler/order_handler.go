package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopadmin-api/internal/application/service"
	"github.com/sangkips/shopadmin-api/internal/domain/repository"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopadmin-api/internal/presentation/http/dto/response"
	"github.com/sangkips/shopadmin-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	location     *time.Location
}

// NewOrderHandler creates a new order handler. Date filters are read as
// calendar days in loc.
func NewOrderHandler(orderService *service.OrderService, loc *time.Location) *OrderHandler {
	if loc == nil {
		loc = time.Local
	}
	return &OrderHandler{orderService: orderService, location: loc}
}

// List handles listing orders, newest first. end_date includes the whole day.
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.StartDate != "" {
		if start, err := time.ParseInLocation(dateLayout, filter.StartDate, h.location); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.ParseInLocation(dateLayout, filter.EndDate, h.location); err == nil {
			end = end.AddDate(0, 0, 1).Add(-time.Millisecond)
			params.EndDate = &end
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Orders retrieved successfully", result)
}

// Get handles fetching a single order with its line items
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}
