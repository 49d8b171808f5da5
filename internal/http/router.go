package httpx

import (
	"encoding/json"
	"net/http"

	"itemdeck/internal/config"
	"itemdeck/internal/http/handlers"
	middlewarex "itemdeck/internal/http/middleware"
	"itemdeck/internal/services/items"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config      config.Cfg
	ItemService *items.Service
}

// NewRouter creates the HTTP router
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middlewarex.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middlewarex.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"env":    deps.Config.App.Env,
			"store":  deps.Config.Store.Driver,
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", handlers.ListItems(deps.ItemService))
		r.Post("/", handlers.CreateItem(deps.ItemService))
		r.Get("/view", handlers.ViewItems(deps.ItemService))

		r.Get("/{id}", handlers.GetItem(deps.ItemService))
		r.Put("/{id}", handlers.UpdateItem(deps.ItemService))
		r.Delete("/{id}", handlers.DeleteItem(deps.ItemService))
	})

	return r
}
