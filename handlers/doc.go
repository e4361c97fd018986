// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the dispatch API.

# Handler Types

Each handler is a struct with its collaborators injected via a
constructor:

  - AuthHandler: Shared-password login (store + config)
  - TaskHandler: Task views, claim and status updates (lifecycle manager)
  - RequestHandler: Request creation and the dashboard listing
  - DirectoryHandler: Technicians, clients, devices, stats

# Task Flow

Technicians work through the task endpoints:

	POST /api/login                    → Login (returns technician identity)
	GET  /api/technician/{id}/tasks    → GetTechnicianTasks (active/history/available)
	POST /api/task/{id}/take           → TakeTask (claim, atomic)
	POST /api/task/{id}/status         → UpdateTaskStatus
	POST /api/requests/technician      → CreateByTechnician

Claiming an already-assigned task returns 409; an unknown task id 404;
a status outside {in_progress, completed, cancelled} 400. The mapping
from lifecycle sentinel errors lives in writeLifecycleError.

# Intake and Dashboard

	POST /api/requests        → CreateIntake (unassigned, status new)
	GET  /api/tasks/available → GetAvailableTasks
	GET  /api/requests        → ListRequests (joined dashboard view)
	GET  /api/stats           → GetStats
*/
package handlers
