package app

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"levelshort/internal/config"
	"levelshort/internal/handlers"
)

// InitMiddleware - initializes middleware handlers for the router.
func InitMiddleware(r *chi.Mux, conf *config.Config, ctrl *handlers.Controller) {
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(conf.Timeout) * time.Second))
	r.Use(ctrl.Authenticate)
	r.Use(ctrl.LoggingMiddleware)
	r.Use(ctrl.GzipEncodeMiddleware)
	r.Use(ctrl.GzipDecodeMiddleware)
	r.Mount("/debug", middleware.Profiler())
}

// Routing - registers routes for the shortener controller.
// Registered routes:
//   - POST "/api/tenants": registers a tenant through ctrl.RegisterTenant().
//   - GET "/api/tenants/me": returns the current tenant record through ctrl.GetTenant().
//   - POST "/api/urls": admits a URL into the tenant dictionary through ctrl.EncodeURL().
//   - GET "/api/urls/decode": resolves a code back into its value through ctrl.DecodeCode().
//   - GET "/api/subscriptions/{name}": returns a tier descriptor through ctrl.GetSubscriptionTier().
//   - GET "/ping": storage availability check through ctrl.PingHandler().
func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Post("/api/tenants", ctrl.RegisterTenant())
	r.Get("/api/tenants/me", ctrl.GetTenant())
	r.Post("/api/urls", ctrl.EncodeURL())
	r.Get("/api/urls/decode", ctrl.DecodeCode())
	r.Get("/api/subscriptions/{name}", ctrl.GetSubscriptionTier())
	r.Get("/ping", ctrl.PingHandler())
}
