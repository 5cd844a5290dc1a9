package api

import (
	"net/http"
	"time"

	// Registers the swagger spec served under /api/swagger.
	_ "model-catalog/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures the chi router with all catalog routes.
func NewRouter(catalogHandler *CatalogHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/models", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListModels)
			r.Post("/", catalogHandler.HandleRegisterModel)
			r.Get("/with-parameters", catalogHandler.HandleListModelsWithParameters)
			r.Post("/query", catalogHandler.HandleQueryModels)
			r.Post("/query/with-parameters", catalogHandler.HandleQueryModelsWithParameters)

			r.Get("/{modelID}", catalogHandler.HandleGetModel)
			r.Delete("/{modelID}", catalogHandler.HandleDeleteModel)
			r.Get("/{modelID}/parameters", catalogHandler.HandleGetModelParameters)
			r.Put("/{modelID}/parameters", catalogHandler.HandleSetModelParameters)
		})
	})

	return r
}
