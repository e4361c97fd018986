// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/fieldserve/lifecycle"
	"github.com/danielhkuo/fieldserve/middleware"
	"github.com/danielhkuo/fieldserve/models"
)

type TaskHandler struct {
	manager *lifecycle.Manager
}

func NewTaskHandler(manager *lifecycle.Manager) *TaskHandler {
	return &TaskHandler{manager: manager}
}

// GetTechnicianTasks handles GET /api/technician/{id}/tasks
func (h *TaskHandler) GetTechnicianTasks(w http.ResponseWriter, r *http.Request) {
	technicianID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tasks, err := h.manager.ListForTechnician(technicianID)
	if err != nil {
		slog.Error("failed to list technician tasks", "error", err, "technician_id", technicianID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TechnicianTasksResponse{
		ActiveTasks:    tasks.Active,
		HistoryTasks:   tasks.History,
		AvailableTasks: tasks.Available,
		Stats: models.TaskStats{
			Active:    len(tasks.Active),
			Completed: len(tasks.History),
			Available: len(tasks.Available),
		},
	})
}

// GetAvailableTasks handles GET /api/tasks/available
func (h *TaskHandler) GetAvailableTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.manager.ListAvailable()
	if err != nil {
		slog.Error("failed to list available tasks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tasks)
}

// TakeTask handles POST /api/task/{id}/take
func (h *TaskHandler) TakeTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.TakeTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.TechnicianID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "technician_id is required")
		return
	}

	task, err := h.manager.Claim(taskID, req.TechnicianID)
	if err != nil {
		writeLifecycleError(w, err, "claim failed", "task_id", taskID)
		return
	}

	slog.Info("task claimed", "task_id", taskID, "technician_id", req.TechnicianID)

	middleware.JSONResponse(w, http.StatusOK, models.TaskActionResponse{
		Success: true,
		Task:    *task,
		Message: "Task accepted",
	})
}

// UpdateTaskStatus handles POST /api/task/{id}/status
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	task, err := h.manager.UpdateStatus(taskID, req.Status)
	if err != nil {
		writeLifecycleError(w, err, "status update failed", "task_id", taskID)
		return
	}

	slog.Info("task status updated", "task_id", taskID, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.TaskActionResponse{
		Success: true,
		Task:    *task,
		Message: "Status updated",
	})
}

// pathID parses an integer path value, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// writeLifecycleError maps lifecycle sentinel errors to HTTP responses.
func writeLifecycleError(w http.ResponseWriter, err error, msg string, logArgs ...any) {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, lifecycle.ErrAlreadyAssigned):
		middleware.ErrorResponse(w, http.StatusConflict, "Task already assigned to another technician")
	case errors.Is(err, lifecycle.ErrInvalidStatus):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, lifecycle.ErrMissingFields):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
	default:
		slog.Error(msg, append([]any{"error", err}, logArgs...)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
