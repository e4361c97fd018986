// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the fieldserve dispatch API.

fieldserve is a field-service dispatch backend for equipment
technicians: it tracks clients, devices and repair requests, lets
technicians authenticate with a shared system password, claim
unassigned requests and update request status.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	SYSTEM_PASSWORD=... go run .

Or with flags:

	go run . -p 5000 -t sqlite -d service_system.db -seed

# Configuration

Required settings:

  - SYSTEM_PASSWORD (--system-password): Shared technician password

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Postgres URL or sqlite file path
  - -seed: Load demo technicians, clients, devices and requests

# Architecture

The server uses a handler-based architecture with dependency injection:

  - lifecycle: Request state machine (claim, status transitions)
  - store: SQL persistence and joined read views
  - handlers: HTTP request handlers (auth, tasks, requests, directory)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Shared-password gate and identity resolution
  - db: Schema creation and demo seed
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
