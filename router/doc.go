// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the dispatch API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Authentication:

	POST /api/login - Shared-password technician login

Task operations:

	GET  /api/technician/{id}/tasks - Active/history/available views
	GET  /api/tasks/available       - Unassigned new requests
	POST /api/task/{id}/take        - Claim a task
	POST /api/task/{id}/status      - Update task status

Request creation:

	POST /api/requests/technician - Technician files client+device+request
	POST /api/requests            - Unauthenticated intake (status new)

Dashboard / directory:

	GET /api/requests    - All requests joined with client/device/technician
	GET /api/technicians - All technicians
	GET /api/clients     - All clients
	GET /api/devices     - All devices
	GET /api/stats       - Request counters

# Handler Initialization

The router wires the store and lifecycle manager once and injects them:

	st := store.New(db)
	manager := lifecycle.NewManager(st)
	taskHandler := handlers.NewTaskHandler(manager)
*/
package router
