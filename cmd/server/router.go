package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/planovo/planovo-api/internal/api"
	apiMiddleware "github.com/planovo/planovo-api/internal/api/middleware"
	"github.com/planovo/planovo-api/internal/metrics"
)

// setupRouter creates the router with every route and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.RequestMetrics)

	healthHandler := api.NewHealthHandler(app.healthChecker)
	srsHandler := api.NewSRSHandler(app.srsService, app.logger)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/db-test", healthHandler.DBTest)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if app.sessionVerifier != nil {
			r.Use(apiMiddleware.NewAuthMiddleware(app.sessionVerifier).Authenticate)
		}
		r.Post("/api/srs/generate", srsHandler.GenerateSRS)
		r.Post("/generate-srs", srsHandler.GenerateSRS)
	})

	r.Method(http.MethodPost, "/api/webhooks/clerk", app.webhookHandler)

	return app.cors(r)
}

// cors wraps h with the configured cross-origin policy.
func (app *application) cors(h http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(app.config.Server.CORSAllowedOrigins),
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.ExposedHeaders([]string{"X-Trace-ID"}),
	)(h)
}
