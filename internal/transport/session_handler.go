package transport

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionCtxKey struct{}

// SessionResponse represents a freshly opened view session
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// PageRoutes mounts one page's routes under /api/sessions/{sessionID}
type PageRoutes interface {
	RegisterRoutes(r chi.Router)
}

// SessionHandler opens and closes view sessions and resolves them for the
// page handlers
type SessionHandler struct {
	registry *session.Registry
	logger   *zap.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(registry *session.Registry, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		logger:   logger,
	}
}

// RegisterRoutes registers session routes and mounts the pages under them
func (h *SessionHandler) RegisterRoutes(r chi.Router, pages ...PageRoutes) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.Create)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Use(h.loadSession)
			r.Get("/", h.Get)
			r.Delete("/", h.Delete)

			for _, page := range pages {
				page.RegisterRoutes(r)
			}
		})
	})
}

// Create opens a session with freshly seeded pages
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, err := h.registry.Create()
	if err != nil {
		if errors.Is(err, session.ErrSessionLimit) {
			h.logger.Warn("Session limit reached", zap.Int("sessions", h.registry.Len()))
			middleware.RespondWithError(w, http.StatusServiceUnavailable, "too many open sessions")
			return
		}
		h.logger.Error("Failed to open session", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to open session")
		return
	}

	h.logger.Info("Session opened", zap.String("session_id", s.ID.String()))
	w.Header().Set("Location", "/api/sessions/"+s.ID.String())
	middleware.RespondWithJSON(w, http.StatusCreated, SessionResponse{ID: s.ID.String(), CreatedAt: s.CreatedAt})
}

// Get describes a live session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := sessionFromContext(r.Context())
	middleware.RespondWithJSON(w, http.StatusOK, SessionResponse{ID: s.ID.String(), CreatedAt: s.CreatedAt})
}

// Delete ends a session and drops its pages
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s := sessionFromContext(r.Context())
	h.registry.Delete(s.ID)

	h.logger.Info("Session closed", zap.String("session_id", s.ID.String()))
	middleware.RespondNoContent(w)
}

func (h *SessionHandler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid session id")
			return
		}

		s, err := h.registry.Get(id)
		if err != nil {
			h.logger.Debug("Unknown session", zap.String("session_id", id.String()))
			middleware.RespondWithError(w, http.StatusNotFound, "session not found")
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*session.Session)
	return s
}

// productIDParam reads {productID}; ok is false after a 400 has been written
func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}

// decodeForm decodes and validates a JSON body; ok is false after a 400 has
// been written
func decodeForm(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Form validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return false
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
