package server

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/config"
	custommiddleware "storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	sessions *session.Registry
}

// NewRouter builds the HTTP routes over the given session registry
func NewRouter(cfg *config.Config, logger *zap.Logger, sessions *session.Registry) chi.Router {
	router := chi.NewRouter()

	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))
	if cfg.Metrics.Enabled {
		router.Use(custommiddleware.MetricsMiddleware)
		router.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"sessions": sessions.Len(),
		})
	})

	sessionHandler := transport.NewSessionHandler(sessions, logger)
	sessionHandler.RegisterRoutes(router,
		transport.NewAdminHandler(logger),
		transport.NewStorefrontHandler(logger),
		transport.NewSellerHandler(logger),
	)

	return router
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	sessions := session.NewRegistry(
		session.WithMaxSessions(cfg.Sessions.Max),
		session.WithActiveGauge(custommiddleware.SessionsActive),
	)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      NewRouter(cfg, logger, sessions),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		sessions: sessions,
	}

	return server
}

// Close flushes the logger. Session state lives only in memory and goes with the process.
func (s *Server) Close() error {
	s.logger.Info("Closing server resources", zap.Int("sessions", s.sessions.Len()))

	s.logger.Sync()
	return nil
}
