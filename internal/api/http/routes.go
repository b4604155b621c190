package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DownloadPath is where the download endpoint is mounted.
const DownloadPath = "/api/download"

// NewRouter creates the local development router.
// It sets up the download route, health check, and Prometheus metrics endpoint.
func NewRouter(downloadService DownloadServiceI, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}).Handler)

	downloadHandler := NewDownloadHandler(downloadService, logger)

	r.Get(DownloadPath, downloadHandler.Download)
	r.Get("/health", downloadHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
