// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle owns every state change to a request's status and
technician assignment.

# Manager

The Manager drives a Store collaborator and never touches SQL itself:

	mgr := lifecycle.NewManager(st)
	task, err := mgr.Claim(requestID, technicianID)

Operations:

  - Claim: atomically assign an unclaimed request (→ in_progress)
  - UpdateStatus: move to in_progress, completed or cancelled
  - CreateByTechnician: new client + device + pre-assigned request
  - CreateIntake: unassigned request with status new
  - ListForTechnician: active / history / available views

# Invariants

At most one technician ever wins a claim: ClaimRequest on the Store is
a single conditional update guarded by the current NULL assignment, so
two concurrent claims cannot both report success.

completed_at is stamped exactly when a request transitions to
completed and left untouched by every other transition.

# Errors

Failures surface as sentinel errors, mapped to HTTP codes by the
handler layer:

	ErrNotFound        → 404
	ErrAlreadyAssigned → 409
	ErrInvalidStatus   → 400
	ErrMissingFields   → 400
*/
package lifecycle
