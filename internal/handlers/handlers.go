package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/service"
	"github.com/zhdanov/girls-backend/pkg/config"
	"github.com/zhdanov/girls-backend/pkg/logger"
)

type contextKey string

const girlContextKey contextKey = "girl"

type Handlers struct {
	authService service.AuthService
	rosterService service.RosterService
	gameService service.GameService
	certService service.CertificateService
	adminService service.AdminService
	config      *config.Config
}

func New(
	authService service.AuthService,
	rosterService service.RosterService,
	gameService service.GameService,
	certService service.CertificateService,
	adminService service.AdminService,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:   authService,
		rosterService: rosterService,
		gameService:   gameService,
		certService:   certService,
		adminService:  adminService,
		config:        config,
	}
}

// WithGirl resolves the bearer token when present. Invalid or missing tokens
// leave the request anonymous; endpoints that mandate auth layer RequireGirl
// on top.
func (h *Handlers) WithGirl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		girl, err := h.authService.Authenticate(r.Context(), token)
		if err != nil {
			logger.ErrorContext(r.Context(), "Failed to authenticate token", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal error", "INTERNAL")
			return
		}
		if girl == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), girlContextKey, girl)
		ctx = context.WithValue(ctx, logger.GirlIDKey, girl.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireGirl rejects anonymous callers.
func (h *Handlers) RequireGirl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if girlFromContext(r) == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated", "UNAUTHORIZED")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin checks the X-Admin-Password header against the configured
// argon2id hash.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get("X-Admin-Password")
		if password == "" || h.config.Admin.PasswordHash == "" {
			writeError(w, http.StatusUnauthorized, "Invalid password", "UNAUTHORIZED")
			return
		}

		match, err := argon2id.ComparePasswordAndHash(password, h.config.Admin.PasswordHash)
		if err != nil || !match {
			writeError(w, http.StatusUnauthorized, "Invalid password", "UNAUTHORIZED")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func girlFromContext(r *http.Request) *domain.Girl {
	if girl, ok := r.Context().Value(girlContextKey).(*domain.Girl); ok {
		return girl
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	response := map[string]string{
		"error": message,
		"code":  code,
	}
	writeJSON(w, statusCode, response)
}

// writeDomainError maps service errors onto the HTTP taxonomy. Unknown errors
// become an opaque 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", "NOT_FOUND")
	case errors.Is(err, domain.ErrInvalidOrExpired):
		writeError(w, http.StatusBadRequest, "Invalid or expired code", "INVALID_OR_EXPIRED")
	case errors.Is(err, domain.ErrDelivery):
		writeError(w, http.StatusBadGateway, "Failed to send email", "DELIVERY_FAILED")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, "Already exists", "CONFLICT")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, service.ErrDeckTooSmall):
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "DECK_TOO_SMALL")
	case errors.Is(err, service.ErrNoPredictions):
		writeError(w, http.StatusServiceUnavailable, "No predictions in database", "NO_PREDICTIONS")
	default:
		logger.ErrorContext(r.Context(), "Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error", "INTERNAL")
	}
}
