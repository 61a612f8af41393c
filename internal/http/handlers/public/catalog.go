package public

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/repository"
	"github.com/solodko/solodko-api/internal/service"
)

// ListCakes handles GET /api/v1/cakes.
func (h *Handler) ListCakes(c *gin.Context) {
	var filter repository.CakeFilter
	filter.OnlyAvailable = c.DefaultQuery("available", "true") != "false"
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid category_id")
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	p := paginationFromQuery(c)
	cakes, total, err := h.catalog.ListCakes(c.Request.Context(), filter, p)
	if err != nil {
		logger.Errorw("list cakes failed", "error", err)
		response.Internal(c)
		return
	}

	response.OK(c, response.PageData{
		Items:    cakes,
		Total:    total,
		Page:     p.Normalize().Page,
		PageSize: p.Normalize().PageSize,
	})
}

// GetCake handles GET /api/v1/cakes/:idOrSlug. Numeric values look up by ID,
// anything else by slug.
func (h *Handler) GetCake(c *gin.Context) {
	key := c.Param("idOrSlug")

	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		cake, err := h.catalog.GetCake(c.Request.Context(), uint(id))
		if err != nil {
			h.writeCatalogError(c, err)
			return
		}
		response.OK(c, cake)
		return
	}

	cake, err := h.catalog.GetCakeBySlug(c.Request.Context(), key)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	response.OK(c, cake)
}

// ListCategories handles GET /api/v1/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		logger.Errorw("list categories failed", "error", err)
		response.Internal(c)
		return
	}
	response.OK(c, categories)
}

func (h *Handler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCakeNotFound):
		response.NotFound(c, "cake not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, "category not found")
	default:
		logger.Errorw("catalog request failed", "error", err)
		response.Internal(c)
	}
}

func paginationFromQuery(c *gin.Context) repository.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return repository.Pagination{Page: page, PageSize: pageSize}
}
