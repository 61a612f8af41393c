package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/service"
)

// CreateCake handles POST /api/v1/admin/cakes.
func (h *Handler) CreateCake(c *gin.Context) {
	var input service.CakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cake, err := h.catalog.CreateCake(c.Request.Context(), input)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	response.Created(c, cake)
}

// UpdateCake handles PUT /api/v1/admin/cakes/:id.
func (h *Handler) UpdateCake(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "invalid cake id")
		return
	}

	var input service.CakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cake, err := h.catalog.UpdateCake(c.Request.Context(), id, input)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	response.OK(c, cake)
}

// MigrateSlugs handles POST /api/v1/admin/cakes/migrate-slugs. It backfills
// slugs for legacy rows and is safe to run repeatedly.
func (h *Handler) MigrateSlugs(c *gin.Context) {
	updated, err := h.catalog.MigrateSlugs(c.Request.Context())
	if err != nil {
		logger.Errorw("slug migration failed", "error", err)
		response.Internal(c)
		return
	}
	response.OK(c, gin.H{"updated": updated})
}

// CreateCategory handles POST /api/v1/admin/categories.
func (h *Handler) CreateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	response.Created(c, category)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *Handler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCakeNotFound):
		response.NotFound(c, "cake not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, "category not found")
	case errors.Is(err, service.ErrSlugExists):
		response.BadRequest(c, "slug already exists")
	case errors.Is(err, service.ErrValidationFailed):
		response.BadRequest(c, err.Error())
	default:
		logger.Errorw("admin catalog request failed", "error", err)
		response.Internal(c)
	}
}
