package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiStub struct {
	meHits     int
	logoutHits int
}

func (s *apiStub) handler() http.Handler {
	mux := http.NewServeMux()
	user := map[string]string{
		"id":    "7f0c2a6e-0000-4000-8000-000000000001",
		"email": "test@example.com",
		"name":  "Test User",
	}

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "password123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"message": map[string]string{"error": "invalid email or password", "code": "INVALID_CREDENTIALS"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"user": user, "token": "access-token"})
	})

	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		s.meHits++
		if r.Header.Get("Authorization") != "Bearer access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})

	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		s.logoutHits++
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "logged out successfully"})
	})

	return mux
}

func TestClient_IdentityCache(t *testing.T) {
	stub := &apiStub{}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	c := New(server.URL, nil)
	ctx := context.Background()

	// No token yet: no identity, no network call.
	user, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, stub.meHits)

	user, err = c.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)

	// First read fetches, second is served from cache.
	_, err = c.CurrentUser(ctx)
	require.NoError(t, err)
	_, err = c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.meHits)

	// Logout drops the token; subsequent reads see no identity.
	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, 1, stub.logoutHits)

	user, err = c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, 1, stub.meHits)
}

func TestClient_LoginFailureIsAuthClass(t *testing.T) {
	stub := &apiStub{}
	server := httptest.NewServer(stub.handler())
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.Login(context.Background(), "test@example.com", "wrong")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, ClassAuth, Classify(err))
}
