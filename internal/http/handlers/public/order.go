package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/service"
)

// CreateOrder handles POST /api/v1/orders (cart checkout).
func (h *Handler) CreateOrder(c *gin.Context) {
	var input service.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.SubmitCart(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Created(c, order)
}

// CreateQuickOrder handles POST /api/v1/orders/quick (single-item checkout).
func (h *Handler) CreateQuickOrder(c *gin.Context) {
	var input service.QuickOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.SubmitQuickOrder(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Created(c, order)
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		logger.Errorw("login failed", "error", err)
		response.Internal(c)
		return
	}

	response.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"name":     user.Name,
			"is_admin": user.IsAdmin,
		},
	})
}

func (h *Handler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCakeNotFound):
		response.NotFound(c, "cake not found")
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidOrderItem),
		errors.Is(err, service.ErrEmptyOrder):
		response.BadRequest(c, err.Error())
	default:
		logger.Errorw("order submission failed", "error", err)
		response.Internal(c)
	}
}
