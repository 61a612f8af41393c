package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/config"
	adminhandlers "github.com/solodko/solodko-api/internal/http/handlers/admin"
	"github.com/solodko/solodko-api/internal/http/handlers/public"
	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/provider"
)

// New builds the gin engine with all routes registered.
func New(cfg *config.Config, container *provider.Container) *gin.Engine {
	if !strings.EqualFold(cfg.App.Mode, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), Logger(), CORS(cfg.CORS))

	engine.GET("/healthz", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	publicHandler := public.NewHandler(container.CatalogService, container.OrderService, container.AuthService)
	adminHandler := adminhandlers.NewHandler(container.CatalogService, container.OrderService, container.SettingService)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/cakes", publicHandler.ListCakes)
		v1.GET("/cakes/:idOrSlug", publicHandler.GetCake)
		v1.GET("/categories", publicHandler.ListCategories)

		v1.POST("/auth/login", publicHandler.Login)

		orders := v1.Group("/orders")
		orders.Use(OptionalAuth(container.AuthService), OrderRateLimit(cfg.Order.RateLimitPerMinute))
		{
			orders.POST("", publicHandler.CreateOrder)
			orders.POST("/quick", publicHandler.CreateQuickOrder)
		}

		admin := v1.Group("/admin")
		admin.Use(RequireAdmin(container.AuthService))
		{
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

			admin.POST("/cakes", adminHandler.CreateCake)
			admin.PUT("/cakes/:id", adminHandler.UpdateCake)
			admin.POST("/cakes/migrate-slugs", adminHandler.MigrateSlugs)

			admin.POST("/categories", adminHandler.CreateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/settings/telegram", adminHandler.GetTelegramSettings)
			admin.PUT("/settings/telegram", adminHandler.UpdateTelegramSettings)
		}
	}

	return engine
}
