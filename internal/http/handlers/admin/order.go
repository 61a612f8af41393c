package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/repository"
	"github.com/solodko/solodko-api/internal/service"
)

// ListOrders handles GET /api/v1/admin/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	filter := repository.OrderFilter{Status: c.Query("status")}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	p := repository.Pagination{Page: page, PageSize: pageSize}

	orders, total, err := h.orders.ListOrders(c.Request.Context(), filter, p)
	if err != nil {
		logger.Errorw("list orders failed", "error", err)
		response.Internal(c)
		return
	}

	response.OK(c, response.PageData{
		Items:    orders,
		Total:    total,
		Page:     p.Normalize().Page,
		PageSize: p.Normalize().PageSize,
	})
}

// GetOrder handles GET /api/v1/admin/orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.OK(c, order)
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.OK(c, order)
}

func (h *Handler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		response.NotFound(c, "order not found")
	case errors.Is(err, service.ErrStatusInvalid):
		response.BadRequest(c, err.Error())
	default:
		logger.Errorw("admin order request failed", "error", err)
		response.Internal(c)
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
