// Package admin holds the operator-facing endpoint handlers.
package admin

import "github.com/solodko/solodko-api/internal/service"

// Handler bundles the services used by admin endpoints.
type Handler struct {
	catalog  *service.CatalogService
	orders   *service.OrderService
	settings *service.SettingService
}

// NewHandler builds the admin handler set.
func NewHandler(catalog *service.CatalogService, orders *service.OrderService, settings *service.SettingService) *Handler {
	return &Handler{catalog: catalog, orders: orders, settings: settings}
}
