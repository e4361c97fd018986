// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fieldserve/auth"
	"github.com/danielhkuo/fieldserve/cliparse"
	"github.com/danielhkuo/fieldserve/middleware"
	"github.com/danielhkuo/fieldserve/models"
	"github.com/danielhkuo/fieldserve/store"
)

type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// Login handles POST /api/login
// Any email plus the correct shared system password grants technician
// access; an unseen email creates the technician row on the fly.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := auth.NormalizeEmail(req.Email)

	switch err := auth.ValidateCredentials(email, req.Password, h.cfg.SystemPassword); err {
	case nil:
	case auth.ErrMissingEmail:
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	case auth.ErrMissingPassword:
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	case auth.ErrInvalidPassword:
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid system password")
		return
	default:
		slog.Error("credential validation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	tech, err := h.store.FindOrCreateTechnician(email, auth.DisplayName(email))
	if err != nil {
		slog.Error("failed to resolve technician", "error", err, "email", email)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	slog.Info("technician logged in", "technician_id", tech.ID, "email", tech.Email)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		User:    tech,
	})
}
