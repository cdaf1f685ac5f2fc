package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbook/internal/config"
	"fieldbook/internal/utils"
)

func chain(cfg config.Config, next http.Handler) http.Handler {
	log := zerolog.Nop()
	return WithAuth(log, cfg)(RequireAuth(next))
}

func TestAuth_MissingToken(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	h := chain(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	h := chain(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	cfg := config.Config{SessionSecret: "s3cret"}
	tok, err := utils.SignJWT(cfg.SessionSecret, "u_1", "jo@example.com", "engineer", time.Hour)
	require.NoError(t, err)

	var gotUID, gotRole string
	h := chain(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID, _ = utils.GetString(r.Context(), CtxUserID)
		gotRole, _ = utils.GetString(r.Context(), CtxRole)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u_1", gotUID)
	assert.Equal(t, "engineer", gotRole)
}
