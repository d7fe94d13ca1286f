package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"studygroups-backend/internal/domain"
)

func TestClient_ListMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/1/messages", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]domain.Message{
			{ID: 1, GroupID: 1, UserID: "creator-1", Body: "welcome"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("token-1")

	msgs, err := c.ListMessages(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, "welcome", msgs[0].Body)
}

func TestClient_SendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Message string `json:"message"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Message{ID: 5, GroupID: 1, Body: body.Message})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	msg, err := c.SendMessage(context.Background(), 1, "hi all")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), msg.ID)
	assert.Equal(t, "hi all", msg.Body)
}

func TestClient_ErrorMapping(t *testing.T) {
	respond := func(status int, code string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "nope", "code": code})
		}))
	}

	t.Run("SessionExpired", func(t *testing.T) {
		srv := respond(http.StatusUnauthorized, "SESSION_EXPIRED")
		defer srv.Close()

		_, err := NewClient(srv.URL).ListMessages(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrAuthExpired)
	})

	t.Run("Forbidden", func(t *testing.T) {
		srv := respond(http.StatusForbidden, "FORBIDDEN")
		defer srv.Close()

		_, err := NewClient(srv.URL).ListMessages(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("NotFound", func(t *testing.T) {
		srv := respond(http.StatusNotFound, "NOT_FOUND")
		defer srv.Close()

		_, err := NewClient(srv.URL).ListMessages(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Conflict", func(t *testing.T) {
		srv := respond(http.StatusConflict, "CONFLICT")
		defer srv.Close()

		_, err := NewClient(srv.URL).SendMessage(context.Background(), 1, "hi")
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Equal(t, "CONFLICT", apiErr.Code)
	})
}
