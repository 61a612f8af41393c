// Package public holds the storefront-facing endpoint handlers.
package public

import "github.com/solodko/solodko-api/internal/service"

// Handler bundles the services used by public endpoints.
type Handler struct {
	catalog *service.CatalogService
	orders  *service.OrderService
	auth    *service.AuthService
}

// NewHandler builds the public handler set.
func NewHandler(catalog *service.CatalogService, orders *service.OrderService, auth *service.AuthService) *Handler {
	return &Handler{catalog: catalog, orders: orders, auth: auth}
}
