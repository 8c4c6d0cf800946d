// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/catalog/service"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
	"github.com/abgdnv/gocatalog/internal/catalog/transport/rest"
	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/pkg/server"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

type Dependencies struct {
	CatalogService service.CatalogService
	Registry       *prometheus.Registry
	Metrics        *web.Metrics
	Logger         *slog.Logger
}

// seedProduct describes one of the demo products loaded on startup.
type seedProduct struct {
	name  string
	brand string
	price int64
}

// seedCatalog holds the records every fresh store starts with; they receive
// ids 1 to 3 in this order.
var seedCatalog = []seedProduct{
	{name: "Product 1", brand: "Brand A", price: 100},
	{name: "Product 2", brand: "Brand B", price: 150},
	{name: "Product 3", brand: "Brand C", price: 200},
}

func SetupDependencies(logger *slog.Logger) *Dependencies {
	productStore := store.NewInMemoryStore()
	seedStore(productStore, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Dependencies{
		CatalogService: service.NewService(productStore),
		Registry:       registry,
		Metrics:        web.NewMetrics(registry),
		Logger:         logger,
	}
}

// seedStore loads the demo catalog into an empty store.
func seedStore(s store.ProductStore, logger *slog.Logger) {
	for _, p := range seedCatalog {
		if _, err := s.Create(p.name, p.brand, decimal.NewFromInt(p.price)); err != nil {
			logger.Error("Failed to seed product", "name", p.name, "brand", p.brand, "error", err)
		}
	}
}

// SetupHttpHandler initializes the HTTP routes and middleware for the
// catalog service. Used by E2E tests to run the real handler in-process.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger)

	if cfg.CORS.Enabled {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         cfg.CORS.MaxAge,
		}))
	}
	if cfg.Metrics.Enabled {
		mux.Use(deps.Metrics.Middleware())
	}

	wireRoutes(mux, deps)

	if cfg.Metrics.Enabled {
		mux.Method(http.MethodGet, cfg.Metrics.Path,
			promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return mux
}

// wireRoutes sets up the HTTP routes for the catalog service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	catalogHandler := rest.NewHandler(deps.CatalogService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
