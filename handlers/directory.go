// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fieldserve/middleware"
	"github.com/danielhkuo/fieldserve/store"
)

type DirectoryHandler struct {
	store *store.Store
}

func NewDirectoryHandler(st *store.Store) *DirectoryHandler {
	return &DirectoryHandler{store: st}
}

// GetTechnicians handles GET /api/technicians
func (h *DirectoryHandler) GetTechnicians(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.store.ListTechnicians()
	if err != nil {
		slog.Error("failed to list technicians", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, technicians)
}

// GetClients handles GET /api/clients
func (h *DirectoryHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.store.ListClients()
	if err != nil {
		slog.Error("failed to list clients", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, clients)
}

// GetDevices handles GET /api/devices
func (h *DirectoryHandler) GetDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.store.ListDevices()
	if err != nil {
		slog.Error("failed to list devices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, devices)
}

// GetStats handles GET /api/stats
func (h *DirectoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats()
	if err != nil {
		slog.Error("failed to load stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, stats)
}
