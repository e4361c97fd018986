// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/fieldserve/models"
	"github.com/danielhkuo/fieldserve/store"
	"github.com/danielhkuo/fieldserve/testutil"
)

func TestLogin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(store.New(conn), cfg)

	tests := []struct {
		name           string
		body           models.LoginRequest
		expectedStatus int
	}{
		{
			name:           "valid login unknown email",
			body:           models.LoginRequest{Email: "olena@example.com", Password: cfg.SystemPassword},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing email",
			body:           models.LoginRequest{Password: cfg.SystemPassword},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           models.LoginRequest{Email: "olena@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong password",
			body:           models.LoginRequest{Email: "olena@example.com", Password: "guess"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/login", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestLoginCreatesStableIdentity(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(store.New(conn), cfg)

	login := func() models.LoginResponse {
		t.Helper()
		req := testutil.MakeRequest("POST", "/api/login", models.LoginRequest{
			Email:    "  Olena@Example.COM ",
			Password: cfg.SystemPassword,
		}, nil)
		w := httptest.NewRecorder()
		handler.Login(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	first := login()
	if !first.Success {
		t.Error("Expected success=true")
	}
	if first.User.ID <= 0 {
		t.Errorf("Expected a persisted row id, got %d", first.User.ID)
	}
	if first.User.Email != "olena@example.com" {
		t.Errorf("Expected normalized email, got %q", first.User.Email)
	}
	if first.User.FullName != "Olena Technician" {
		t.Errorf("Expected synthesized name, got %q", first.User.FullName)
	}
	if first.User.Role != models.RoleTechnician {
		t.Errorf("Expected technician role, got %q", first.User.Role)
	}

	// The same email always resolves to the same row id
	second := login()
	if second.User.ID != first.User.ID {
		t.Errorf("Expected stable id %d, got %d", first.User.ID, second.User.ID)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user row, got %d", count)
	}
}

func TestLoginKnownTechnicianName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(store.New(conn), cfg)

	req := testutil.MakeRequest("POST", "/api/login", models.LoginRequest{
		Email:    "andrii@eurocode.ua",
		Password: cfg.SystemPassword,
	}, nil)
	w := httptest.NewRecorder()
	handler.Login(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.User.FullName != "Andrii Tekhnik" {
		t.Errorf("Expected fixed known name, got %q", resp.User.FullName)
	}
}
