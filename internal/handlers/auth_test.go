package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/auth"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *repo.AccountRepository, *auth.Service) {
	t.Helper()
	authService, err := auth.NewService()
	require.NoError(t, err)
	accounts := repo.NewAccountRepository()
	return NewAuthHandler(authService, accounts), accounts, authService
}

func seedAccount(t *testing.T, accounts *repo.AccountRepository, authService *auth.Service, username, password string, active bool) {
	t.Helper()
	hash, err := authService.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, accounts.Save(&models.Account{
		ID:           "acc-" + username,
		Username:     username,
		Email:        username + "@rental.local",
		PasswordHash: hash,
		Role:         models.RoleAgent,
		IsActive:     active,
		CreatedAt:    time.Now(),
	}))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandler_Login(t *testing.T) {
	handler, accounts, authService := newAuthHandler(t)
	seedAccount(t, accounts, authService, "frontdesk", "password123", true)

	rr := postJSON(t, handler.Login, "/api/auth/login", models.LoginRequest{
		Username: "frontdesk",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "frontdesk", resp.Account.Username)

	// The password hash never leaves the server
	assert.NotContains(t, rr.Body.String(), "password_hash")

	claims, err := authService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Account.ID, claims.AccountID)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	handler, accounts, authService := newAuthHandler(t)
	seedAccount(t, accounts, authService, "frontdesk", "password123", true)
	seedAccount(t, accounts, authService, "dormant", "password123", false)

	tests := []struct {
		name     string
		request  models.LoginRequest
		expected int
	}{
		{"wrong password", models.LoginRequest{Username: "frontdesk", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", models.LoginRequest{Username: "ghost", Password: "password123"}, http.StatusUnauthorized},
		{"deactivated account", models.LoginRequest{Username: "dormant", Password: "password123"}, http.StatusUnauthorized},
		{"missing fields", models.LoginRequest{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, handler.Login, "/api/auth/login", tt.request)
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}

func TestAuthHandler_LoginMethodNotAllowed(t *testing.T) {
	handler, _, _ := newAuthHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	rr := httptest.NewRecorder()
	handler.Login(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	handler, accounts, _ := newAuthHandler(t)

	rr := postJSON(t, handler.Register, "/api/auth/register", models.RegisterRequest{
		Username: "newagent",
		Email:    "newagent@rental.local",
		Password: "password123",
		Role:     models.RoleAgent,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Account.IsActive)

	saved, err := accounts.FindByUsername("newagent")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgent, saved.Role)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	handler, accounts, authService := newAuthHandler(t)
	seedAccount(t, accounts, authService, "taken", "password123", true)

	tests := []struct {
		name     string
		request  models.RegisterRequest
		expected int
	}{
		{"short username", models.RegisterRequest{Username: "ab", Email: "a@b.c", Password: "password123", Role: models.RoleAgent}, http.StatusBadRequest},
		{"bad email", models.RegisterRequest{Username: "agent2", Email: "nope", Password: "password123", Role: models.RoleAgent}, http.StatusBadRequest},
		{"short password", models.RegisterRequest{Username: "agent2", Email: "a@b.c", Password: "short", Role: models.RoleAgent}, http.StatusBadRequest},
		{"invalid role", models.RegisterRequest{Username: "agent2", Email: "a@b.c", Password: "password123", Role: "boss"}, http.StatusBadRequest},
		{"duplicate username", models.RegisterRequest{Username: "taken", Email: "a@b.c", Password: "password123", Role: models.RoleAgent}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, handler.Register, "/api/auth/register", tt.request)
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}
