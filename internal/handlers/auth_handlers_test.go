package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/handlers"
	"github.com/zhdanov/girls-backend/pkg/config"
)

// stubAuthService lets each test script the auth behavior per call.
type stubAuthService struct {
	requestCode  func(ctx context.Context, girlID int64) error
	verify       func(ctx context.Context, girlID int64, code string) (*domain.TokenResponse, error)
	authenticate func(ctx context.Context, token string) (*domain.Girl, error)
}

func (s *stubAuthService) RequestCode(ctx context.Context, girlID int64) error {
	return s.requestCode(ctx, girlID)
}

func (s *stubAuthService) Verify(ctx context.Context, girlID int64, code string) (*domain.TokenResponse, error) {
	return s.verify(ctx, girlID, code)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Girl, error) {
	return s.authenticate(ctx, token)
}

func newTestHandlers(auth *stubAuthService, cfg *config.Config) *handlers.Handlers {
	if cfg == nil {
		cfg = config.Load()
	}
	return handlers.New(auth, nil, nil, nil, nil, cfg)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// ---------- RequestCode ----------

func TestRequestCodeHandlerOK(t *testing.T) {
	var gotGirlID int64
	h := newTestHandlers(&stubAuthService{
		requestCode: func(_ context.Context, girlID int64) error {
			gotGirlID = girlID
			return nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/request-code", strings.NewReader(`{"girl_id": 7}`))
	rec := httptest.NewRecorder()
	h.RequestCode(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotGirlID)
	assert.Equal(t, "Code sent to email", decodeBody(t, rec)["message"])
}

func TestRequestCodeHandlerBadJSON(t *testing.T) {
	h := newTestHandlers(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/request-code", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	h.RequestCode(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, rec)["code"])
}

func TestRequestCodeHandlerMissingGirlID(t *testing.T) {
	h := newTestHandlers(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/request-code", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.RequestCode(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestCodeHandlerUnknownGirl(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		requestCode: func(context.Context, int64) error { return domain.ErrNotFound },
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/request-code", strings.NewReader(`{"girl_id": 99}`))
	rec := httptest.NewRecorder()
	h.RequestCode(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, rec)["code"])
}

func TestRequestCodeHandlerDeliveryFailure(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		requestCode: func(context.Context, int64) error {
			return domain.ErrDelivery
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/request-code", strings.NewReader(`{"girl_id": 1}`))
	rec := httptest.NewRecorder()
	h.RequestCode(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "DELIVERY_FAILED", decodeBody(t, rec)["code"])
}

// ---------- VerifyCode ----------

func TestVerifyCodeHandlerOK(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		verify: func(_ context.Context, girlID int64, code string) (*domain.TokenResponse, error) {
			assert.Equal(t, "ABCD2345", code)
			return &domain.TokenResponse{AccessToken: "jwt", TokenType: "bearer", GirlID: girlID}, nil
		},
	}, nil)

	// Lowercase input is normalized before the service sees it.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(`{"girl_id": 3, "code": "abcd2345"}`))
	rec := httptest.NewRecorder()
	h.VerifyCode(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "jwt", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
	assert.Equal(t, float64(3), body["girl_id"])
}

func TestVerifyCodeHandlerMalformedCode(t *testing.T) {
	called := false
	h := newTestHandlers(&stubAuthService{
		verify: func(context.Context, int64, string) (*domain.TokenResponse, error) {
			called = true
			return nil, nil
		},
	}, nil)

	// Too short to ever match; rejected with the merged signal before any
	// ledger lookup.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(`{"girl_id": 3, "code": "abc"}`))
	rec := httptest.NewRecorder()
	h.VerifyCode(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OR_EXPIRED", decodeBody(t, rec)["code"])
	assert.False(t, called)
}

func TestVerifyCodeHandlerWrongCode(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		verify: func(context.Context, int64, string) (*domain.TokenResponse, error) {
			return nil, domain.ErrInvalidOrExpired
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", strings.NewReader(`{"girl_id": 3, "code": "WRONGCDE"}`))
	rec := httptest.NewRecorder()
	h.VerifyCode(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "INVALID_OR_EXPIRED", body["code"])
	assert.Equal(t, "Invalid or expired code", body["error"])
}

// ---------- Middleware ----------

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireGirlRejectsAnonymous(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		authenticate: func(context.Context, string) (*domain.Girl, error) { return nil, nil },
	}, nil)

	chain := h.WithGirl(h.RequireGirl(okHandler()))

	// No Authorization header at all.
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/certificate", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bearer token that does not resolve.
	req := httptest.NewRequest(http.MethodPost, "/api/certificate", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireGirlPassesAuthenticated(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		authenticate: func(_ context.Context, token string) (*domain.Girl, error) {
			assert.Equal(t, "good-token", token)
			return &domain.Girl{ID: 1, Name: "Аня", IsActive: true}, nil
		},
	}, nil)

	chain := h.WithGirl(h.RequireGirl(okHandler()))

	req := httptest.NewRequest(http.MethodPost, "/api/certificate", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithGirlStorageError(t *testing.T) {
	h := newTestHandlers(&stubAuthService{
		authenticate: func(context.Context, string) (*domain.Girl, error) {
			return nil, errors.New("db down")
		},
	}, nil)

	chain := h.WithGirl(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/girls", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	hash, err := argon2id.CreateHash("s3cret", argon2id.DefaultParams)
	require.NoError(t, err)

	cfg := config.Load()
	cfg.Admin.PasswordHash = hash
	h := newTestHandlers(&stubAuthService{}, cfg)

	chain := h.RequireAdmin(okHandler())

	// Correct password.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/girls", nil)
	req.Header.Set("X-Admin-Password", "s3cret")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong password.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/girls", nil)
	req.Header.Set("X-Admin-Password", "nope")
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Missing header.
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/girls", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminDisabledWithoutHash(t *testing.T) {
	cfg := config.Load()
	cfg.Admin.PasswordHash = ""
	h := newTestHandlers(&stubAuthService{}, cfg)

	chain := h.RequireAdmin(okHandler())

	// With no hash configured every password is rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/girls", nil)
	req.Header.Set("X-Admin-Password", "anything")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
