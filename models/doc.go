// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: email, password
  - TakeTaskRequest: technician_id
  - UpdateStatusRequest: status
  - CreateTechnicianRequestRequest: client_name, device_model, description, technician_id (+ optional fields)
  - CreateIntakeRequest: client_id, device_id, description

# Response Types

Types for JSON responses:

  - LoginResponse: success, user
  - TechnicianTasksResponse: active_tasks, history_tasks, available_tasks, stats
  - TaskActionResponse: success, task, message
  - CreateRequestResponse: success, id, message
  - StatsResponse: dashboard counts
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Technician: an authenticated service technician
  - Client: a company/contact record owning devices
  - Device: a piece of equipment owned by one client
  - Request: the central service ticket
  - TaskView: Request joined with client/device/technician summary

# Constants

Status values:

	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

Priority values:

	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
*/
package models
