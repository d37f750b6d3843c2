package main

import (
	"net/http"
	"testing"

	"github.com/launikari/fitplan/internal/e2etest"
	"github.com/launikari/fitplan/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FITPLAN_SQLITE_URL":
		return ":memory:", true
	case "FITPLAN_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func Test_application_auth(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Requires authentication", func(t *testing.T) {
		status, env, err := client.JSON(ctx, http.MethodGet, "/api/auth/me", nil)
		if err != nil {
			t.Fatalf("Failed to get current user: %v", err)
		}
		if status != http.StatusUnauthorized {
			t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, status)
		}
		if env.Success {
			t.Error("Expected success to be false")
		}
	})

	t.Run("Register creates a session", func(t *testing.T) {
		if err = client.Register(ctx, "maija", "correct-horse-battery"); err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		status, env, err := client.JSON(ctx, http.MethodGet, "/api/auth/me", nil)
		if err != nil {
			t.Fatalf("Failed to get current user: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, status)
		}
		var user struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		}
		if err = env.DecodeData(&user); err != nil {
			t.Fatalf("Failed to decode user: %v", err)
		}
		if user.Username != "maija" {
			t.Errorf("Expected username %q, got %q", "maija", user.Username)
		}
		if user.ID == 0 {
			t.Error("Expected a non-zero user id")
		}
	})

	t.Run("Rejects duplicate username", func(t *testing.T) {
		other, err := e2etest.NewClient(server.URL())
		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
		credentials := map[string]string{"username": "maija", "password": "another-password"}
		status, _, err := other.JSON(ctx, http.MethodPost, "/api/auth/register", credentials)
		if err != nil {
			t.Fatalf("Failed to post registration: %v", err)
		}
		if status != http.StatusConflict {
			t.Errorf("Expected status %d, got %d", http.StatusConflict, status)
		}
	})

	t.Run("Rejects invalid credentials on registration", func(t *testing.T) {
		tests := []struct {
			name     string
			username string
			password string
		}{
			{"short username", "ab", "correct-horse-battery"},
			{"short password", "pekka", "short"},
			{"bad username characters", "pekka virtanen", "correct-horse-battery"},
		}
		for _, tt := range tests {
			credentials := map[string]string{"username": tt.username, "password": tt.password}
			status, _, err := client.JSON(ctx, http.MethodPost, "/api/auth/register", credentials)
			if err != nil {
				t.Fatalf("%s: failed to post registration: %v", tt.name, err)
			}
			if status != http.StatusBadRequest {
				t.Errorf("%s: expected status %d, got %d", tt.name, http.StatusBadRequest, status)
			}
		}
	})

	t.Run("Logout destroys the session", func(t *testing.T) {
		if err = client.Logout(ctx); err != nil {
			t.Fatalf("Failed to logout: %v", err)
		}
		status, _, err := client.JSON(ctx, http.MethodGet, "/api/auth/me", nil)
		if err != nil {
			t.Fatalf("Failed to get current user: %v", err)
		}
		if status != http.StatusUnauthorized {
			t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, status)
		}
	})

	t.Run("Login rejects a wrong password", func(t *testing.T) {
		credentials := map[string]string{"username": "maija", "password": "wrong-password"}
		status, _, err := client.JSON(ctx, http.MethodPost, "/api/auth/login", credentials)
		if err != nil {
			t.Fatalf("Failed to post login: %v", err)
		}
		if status != http.StatusUnauthorized {
			t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, status)
		}
	})

	t.Run("Login restores access", func(t *testing.T) {
		if err = client.Login(ctx, "maija", "correct-horse-battery"); err != nil {
			t.Fatalf("Failed to login: %v", err)
		}
		status, _, err := client.JSON(ctx, http.MethodGet, "/api/auth/me", nil)
		if err != nil {
			t.Fatalf("Failed to get current user: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("Expected status %d, got %d", http.StatusOK, status)
		}
	})
}
