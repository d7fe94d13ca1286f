package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studygroups-backend/internal/security"
)

func TestAuthenticator(t *testing.T) {
	tokens := security.NewTokenManager("test-secret", time.Hour, 7*24*time.Hour)

	var seenUserID string
	handler := Authenticator(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = userID(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("ValidAccessToken", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken("user-1", "u1@campus.edu")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", seenUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body errorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, CodeSessionExpired, body.Code)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken("user-1", "u1@campus.edu")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body errorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, CodeSessionExpired, body.Code)
	})
}
