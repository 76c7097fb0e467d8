package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inventory-allocation-service/internal/api/handlers"
	"inventory-allocation-service/internal/platform/metrics"
	"inventory-allocation-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.DatasetRepository, store ports.PlanStore, defaultTimeLimit time.Duration) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	datasetHandler := &handlers.DatasetHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:             repo,
		Store:            store,
		DefaultTimeLimit: defaultTimeLimit,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/warehouses", datasetHandler.Warehouses)
	mux.HandleFunc("/orders", datasetHandler.Orders)
	mux.HandleFunc("/stock", datasetHandler.Stock)
	mux.HandleFunc("/overview", datasetHandler.Overview)
	mux.HandleFunc("/plans", planHandler.Plans)
	mux.HandleFunc("/plans/", planHandler.Get)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestMiddleware(mux)
}
