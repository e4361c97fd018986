// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and demo seeding.

# Schema Creation

CreateSchema initializes all required tables for the selected dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The sqlite and postgres DDL differ only in id generation
(AUTOINCREMENT vs BIGSERIAL) and timestamp defaults.

# Tables

The schema includes:

  - users: Service technicians (created on first login)
  - clients: Companies owning serviced equipment
  - devices: Equipment, each owned by exactly one client
  - requests: Service tickets tying client, device and technician

# Relationships

	clients 1──* devices   (ON DELETE CASCADE)
	clients 1──* requests  (ON DELETE CASCADE)
	devices 1──* requests  (ON DELETE CASCADE)
	users   1──* requests  (assignment, nullable, no cascade)

# Indexes

Performance indexes on:

  - users.email (unique)
  - devices.client_id
  - requests.assigned_technician_id
  - requests.status

# Demo Data

SeedDemoData loads five technicians, four clients, five devices and
four requests (two assigned, two available) for local development.
It is a no-op on a non-empty database.
*/
package db
