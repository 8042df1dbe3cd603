package rest

import (
	"net/http"

	"github.com/CameronXie/neptune-tea-api/internal/api/rest/handlers"
	"github.com/CameronXie/neptune-tea-api/internal/api/rest/middlewares"
)

type RouterConfig struct {
	MenuHandler   *handlers.MenuHandler
	OrderHandler  *handlers.OrderHandler
	HealthHandler http.Handler
	Middlewares   []middlewares.Middleware
}

// NewMuxWithHandlers initializes a new HTTP mux with routes defined by the given RouterConfig and wraps it
// with the configured middlewares, outermost first.
func NewMuxWithHandlers(cfg *RouterConfig) http.Handler {
	router := http.NewServeMux()

	router.Handle("GET /health", cfg.HealthHandler)
	router.Handle("GET /api/menu", http.HandlerFunc(cfg.MenuHandler.ListMenuItems))
	router.Handle("GET /api/menu/{category}", http.HandlerFunc(cfg.MenuHandler.ListMenuItemsByCategory))
	router.Handle("POST /api/orders", http.HandlerFunc(cfg.OrderHandler.CreateOrder))

	return middlewares.Chain(router, cfg.Middlewares...)
}
