package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	_ "github.com/mtlprog/roicalc/docs" // Import generated docs
	"github.com/mtlprog/roicalc/internal/handler/dto"
	"github.com/mtlprog/roicalc/internal/middleware"
	"github.com/mtlprog/roicalc/internal/service"
	"github.com/mtlprog/roicalc/internal/static"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	sessions    *service.SessionService
	db          Pinger
	rateLimiter *middleware.RateLimiter
}

// New creates a new Handler. db may be nil when sessions are kept in memory.
func New(sessions *service.SessionService, db Pinger) *Handler {
	return &Handler{
		sessions: sessions,
		db:       db,
	}
}

// WithRateLimiter applies a per-client rate limit to every API route.
func (h *Handler) WithRateLimiter(rl *middleware.RateLimiter) *Handler {
	h.rateLimiter = rl
	return h
}

// api wraps an API handler with the rate limiter when one is configured.
func (h *Handler) api(fn http.HandlerFunc) http.Handler {
	if h.rateLimiter == nil {
		return fn
	}
	return h.rateLimiter.Limit(fn)
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Landing page with the calculator widget
	mux.HandleFunc("GET /{$}", h.handleIndex)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Stateless calculator
	mux.Handle("POST /api/v1/calculate", h.api(h.handleCalculate))
	mux.Handle("GET /api/v1/parameters", h.api(h.handleListParameters))
	mux.Handle("GET /api/v1/industries", h.api(h.handleListIndustries))

	// Wizard sessions
	mux.Handle("POST /api/v1/sessions", h.api(h.handleCreateSession))
	mux.Handle("GET /api/v1/sessions/{id}", h.api(h.handleGetSession))
	mux.Handle("DELETE /api/v1/sessions/{id}", h.api(h.handleDeleteSession))
	mux.Handle("POST /api/v1/sessions/{id}/mode", h.api(h.handleSelectMode))
	mux.Handle("POST /api/v1/sessions/{id}/industry", h.api(h.handleSelectIndustry))
	mux.Handle("PATCH /api/v1/sessions/{id}/parameters", h.api(h.handleSetParameters))
	mux.Handle("POST /api/v1/sessions/{id}/start-over", h.api(h.handleStartOver))
}

// handleHealthz returns 200 OK if the session store is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			slog.Error("database health check failed", "error", err)
			respondError(w, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database unavailable")
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// handleIndex serves the embedded landing page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(static.IndexHTML)); err != nil {
		slog.Error("failed to write index page", "error", err)
	}
}

// decodeJSON reads a JSON request body into v. An empty body counts as an empty
// object, so missing fields are reported by the same validation as absent ones.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error onto the standard error response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractSessionID extracts and validates session ID from path parameter.
// Returns (sessionID, true) if valid, ("", false) if invalid (error already sent to client).
func extractSessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "session id is required")
		return "", false
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "session id must be a valid UUID")
		return "", false
	}

	return sessionID, true
}
