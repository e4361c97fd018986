// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fieldserve/lifecycle"
	"github.com/danielhkuo/fieldserve/middleware"
	"github.com/danielhkuo/fieldserve/models"
	"github.com/danielhkuo/fieldserve/store"
)

type RequestHandler struct {
	manager *lifecycle.Manager
	store   *store.Store
}

func NewRequestHandler(manager *lifecycle.Manager, st *store.Store) *RequestHandler {
	return &RequestHandler{manager: manager, store: st}
}

// CreateByTechnician handles POST /api/requests/technician
// A technician files a request for equipment found on site: client,
// device and request are created together and the request is
// immediately in_progress under that technician.
func (h *RequestHandler) CreateByTechnician(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTechnicianRequestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.manager.CreateByTechnician(lifecycle.AssignedRequestParams{
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		DeviceModel:  req.DeviceModel,
		SerialNumber: req.SerialNumber,
		DeviceType:   req.DeviceType,
		Description:  req.Description,
		Priority:     req.Priority,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		writeLifecycleError(w, err, "request creation failed", "technician_id", req.TechnicianID)
		return
	}

	slog.Info("request created by technician", "request_id", id, "technician_id", req.TechnicianID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRequestResponse{
		Success: true,
		ID:      id,
		Message: "Request created and accepted for service",
	})
}

// CreateIntake handles POST /api/requests
// Unauthenticated intake: the request starts unassigned with status
// new and shows up in every technician's available view.
func (h *RequestHandler) CreateIntake(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIntakeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.manager.CreateIntake(lifecycle.UnassignedRequestParams{
		ClientID:    req.ClientID,
		DeviceID:    req.DeviceID,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		writeLifecycleError(w, err, "intake creation failed", "client_id", req.ClientID)
		return
	}

	slog.Info("intake request created", "request_id", id, "client_id", req.ClientID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRequestResponse{
		Success: true,
		ID:      id,
		Message: "Request registered",
	})
}

// ListRequests handles GET /api/requests
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.store.ListAllRequests()
	if err != nil {
		slog.Error("failed to list requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, requests)
}
