package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
)

// GetTelegramSettings handles GET /api/v1/admin/settings/telegram.
func (h *Handler) GetTelegramSettings(c *gin.Context) {
	cfg, err := h.settings.GetTelegramSettings(c.Request.Context())
	if err != nil {
		logger.Errorw("get telegram settings failed", "error", err)
		response.Internal(c)
		return
	}
	response.OK(c, cfg)
}

// UpdateTelegramSettings handles PUT /api/v1/admin/settings/telegram.
func (h *Handler) UpdateTelegramSettings(c *gin.Context) {
	var cfg models.TelegramSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.settings.UpdateTelegramSettings(c.Request.Context(), cfg); err != nil {
		logger.Errorw("update telegram settings failed", "error", err)
		response.Internal(c)
		return
	}
	response.OK(c, cfg)
}
