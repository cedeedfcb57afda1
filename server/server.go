package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/bluele/gcache"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	"github.com/katalvlaran/subway/metrics"
	"github.com/katalvlaran/subway/planner"
)

const shutdownTimeout = 10 * time.Second

// Config configures a Server.
type Config struct {
	Addr            string
	CacheSize       int // 0 disables the route cache
	CacheTTL        time.Duration
	AllowedOrigins  []string // empty allows any origin
	DefaultStrategy string

	// Metrics and Registry are optional; Registry enables /metrics.
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

type Server struct {
	planner  *planner.Planner
	cache    gcache.Cache
	metrics  *metrics.Metrics
	strategy string
	router   chi.Router
	server   *http.Server
}

func New(p *planner.Planner, cfg Config) *Server {
	server := &Server{
		planner:  p,
		metrics:  cfg.Metrics,
		strategy: cfg.DefaultStrategy,
	}
	if server.strategy == "" {
		server.strategy = planner.StrategyDistance
	}
	if cfg.CacheSize > 0 {
		builder := gcache.New(cfg.CacheSize).LRU()
		if cfg.CacheTTL > 0 {
			builder = builder.Expiration(cfg.CacheTTL)
		}
		server.cache = builder.Build()
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         86400,
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(corsHandler.Handler)

	router.Get("/healthz", server.handleHealth)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/route", server.handleRoute)
		r.Get("/stations", server.handleStations)
		r.Get("/stations/{name}", server.handleStation)
	})
	if cfg.Registry != nil {
		router.Handle("/metrics", metrics.Handler(cfg.Registry))
	}

	server.router = router
	server.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server
}

// Handler returns the root HTTP handler.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Serve listens on the configured address until ctx is done, then shuts down
// gracefully.
func (server *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", server.server.Addr)
	if err != nil {
		return err
	}
	log.Printf("listening on http://%s", listener.Addr())

	errc := make(chan error, 1)
	go func() { errc <- server.server.Serve(listener) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down.")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.server.Shutdown(shutdownCtx)
}
