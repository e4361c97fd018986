// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements persistence on database/sql for both the
sqlite and postgres drivers.

# Lifecycle Store

Store satisfies lifecycle.Store. The claim path is a single conditional
update:

	UPDATE requests
	SET assigned_technician_id = $1, status = 'in_progress', updated_at = $2
	WHERE id = $3 AND assigned_technician_id IS NULL

Zero affected rows means the request is either missing or already
claimed; the lifecycle manager disambiguates with RequestExists.

CreateAssignedRequest wraps the client + device + request inserts in a
transaction with a deferred rollback, so a technician-filed request is
all-or-nothing.

# Read Layer

Joined task views (request + client + device, optionally technician
name) back every listing endpoint:

  - GetRequestView, ListActive, ListHistory, ListAvailable
  - ListAllRequests (dashboard), ListTechnicians, ListClients,
    ListDevices, Stats

# Technician Identity

FindOrCreateTechnician persists a users row on first login and returns
the store-assigned id. Inserts losing a unique-email race fall back to
re-reading the winner's row.

# Placeholders

All queries use $N placeholders. lib/pq takes them natively; sqlite
treats $N as named parameters bound in positional order, so the same
SQL runs on both drivers. Inserts use RETURNING id for the same reason
(lib/pq has no LastInsertId).
*/
package store
