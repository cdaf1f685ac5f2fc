package utils

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbook/internal/apperr"
)

func TestJWTRoundTrip(t *testing.T) {
	tok, err := SignJWT("secret", "u_1", "jo@example.com", "engineer", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u_1", claims.UserID)
	assert.Equal(t, "engineer", claims.Role)

	_, err = ParseJWT("wrong-secret", tok)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.True(t, CheckPassword(h, "hunter22"))
	assert.False(t, CheckPassword(h, "hunter23"))
}

func TestNewID(t *testing.T) {
	id := NewID("ts_")
	assert.True(t, strings.HasPrefix(id, "ts_"))
	assert.NotEqual(t, id, NewID("ts_"))
	assert.NotContains(t, id, "-")
}

func TestErrorFrom(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{apperr.Invalid("name is required"), 400, "name is required"},
		{apperr.ErrNotFound, 404, "not found"},
		{apperr.ErrConflict, 409, "conflict"},
		{&opaqueErr{}, 500, "internal error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		ErrorFrom(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code)
		assert.Contains(t, rec.Body.String(), tc.body)
	}
}

type opaqueErr struct{}

func (*opaqueErr) Error() string { return "connection reset" }
