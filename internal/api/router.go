package api

import (
	"net/http"
	"time"

	// Registers the generated OpenAPI document with swag.
	_ "ui-architect/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates the chi router with all routes of the service.
func NewRouter(chatHandler *ChatHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Settings ---
			r.Get("/settings", chatHandler.GetSettings)
			r.Patch("/settings", chatHandler.UpdateSettings)
			r.Post("/settings/options/{option}/toggle", chatHandler.ToggleOption)
			r.Post("/settings/elements/{kind}/toggle", chatHandler.ToggleElement)
			r.Get("/elements", chatHandler.ListElements)
			r.Get("/example", chatHandler.GetExample)

			// --- Messages ---
			r.Get("/messages", chatHandler.GetMessages)
			r.Post("/messages", chatHandler.PostMessage)
			r.Get("/status", chatHandler.GetStatus)
		})

		// Holds the connection until the generation finishes, so no timeout.
		r.Post("/messages/stream", chatHandler.StreamMessage)
	})

	return r
}
