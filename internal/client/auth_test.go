// ABOUTME: Tests for authentication endpoints
// ABOUTME: Covers login, second-factor branch, register, revalidation, logout

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("expected POST /api/auth/login, got %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "user@test.com" {
			t.Errorf("expected email user@test.com, got %s", req["email"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user":  User{ID: "u-1", Email: "user@test.com", Name: "Sam"},
			"token": "tok-abc",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	user, token, err := c.Login(context.Background(), "user@test.com", "correctpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "user@test.com" {
		t.Errorf("expected user@test.com, got %s", user.Email)
	}
	if token != "tok-abc" {
		t.Errorf("expected token tok-abc, got %s", token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "invalid email or password", "code": 401})
	}))
	defer server.Close()

	c := New(server.URL)
	_, _, err := c.Login(context.Background(), "user@test.com", "wrongpass")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsAuth(err) {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestAdminLogin_RequiresSecondFactor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["two_factor_code"] == "" {
			json.NewEncoder(w).Encode(map[string]bool{"requires_2fa": true})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user":  User{ID: "a-1", Email: "admin@test.com"},
			"token": "tok-admin",
		})
	}))
	defer server.Close()

	c := New(server.URL)

	result, err := c.AdminLogin(context.Background(), "admin@test.com", "pass", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.RequiresSecondFactor {
		t.Fatal("expected RequiresSecondFactor true")
	}
	if result.Token != "" {
		t.Errorf("expected no token, got %s", result.Token)
	}

	result, err = c.AdminLogin(context.Background(), "admin@test.com", "pass", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RequiresSecondFactor {
		t.Error("expected second factor satisfied")
	}
	if result.Token != "tok-admin" {
		t.Errorf("expected admin token, got %s", result.Token)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"error": "email already registered", "code": 409})
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.Register(context.Background(), "dupe@test.com", "pass", "Sam", "555-0100")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestMe_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("expected bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"user": User{ID: "u-1", Email: "user@test.com"}})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("tok-abc")
	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u-1" {
		t.Errorf("expected user u-1, got %s", user.ID)
	}
}

func TestMe_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": "token expired", "code": 401})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("stale")
	_, err := c.Me(context.Background())
	if !IsAuth(err) {
		t.Errorf("expected auth error, got %v", err)
	}
}

func TestLogout_IgnoresResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/logout" {
			t.Errorf("expected /api/auth/logout, got %s", r.URL.Path)
		}
		w.Write([]byte("whatever"))
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("tok-abc")
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
