// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/fieldserve/models"
)

var (
	ErrNotFound        = errors.New("request not found")
	ErrAlreadyAssigned = errors.New("request already assigned to another technician")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrMissingFields   = errors.New("missing required fields")
)

// Store is the persistence collaborator the manager drives. ClaimRequest
// must be a single conditional update guarded by the current NULL
// assignment - the manager never does a read-then-write claim.
type Store interface {
	RequestExists(id int64) (bool, error)
	ClaimRequest(id, technicianID int64, now time.Time) (int64, error)
	SetRequestStatus(id int64, status string, completedAt *time.Time) (int64, error)
	CreateAssignedRequest(p AssignedRequestParams, now time.Time) (int64, error)
	CreateUnassignedRequest(p UnassignedRequestParams, now time.Time) (int64, error)
	GetRequestView(id int64) (*models.TaskView, error)
	ListActive(technicianID int64) ([]models.TaskView, error)
	ListHistory(technicianID int64, limit int) ([]models.TaskView, error)
	ListAvailable() ([]models.TaskView, error)
}

// AssignedRequestParams describes the client+device+request graph a
// technician files on site. The store inserts all three rows in one
// transaction.
type AssignedRequestParams struct {
	ClientName   string
	ClientPhone  string
	DeviceModel  string
	SerialNumber string
	DeviceType   string
	Description  string
	Priority     string
	TechnicianID int64
}

// UnassignedRequestParams describes an intake request against an
// existing client and device.
type UnassignedRequestParams struct {
	ClientID    int64
	DeviceID    int64
	Description string
	Priority    string
}

// TechnicianTasks partitions a technician's visible requests.
type TechnicianTasks struct {
	Active    []models.TaskView
	History   []models.TaskView
	Available []models.TaskView
}

// historyLimit caps the completed-request view at the most recent entries.
const historyLimit = 20

// Manager mediates every change to a request's status and technician
// assignment.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Claim assigns an unclaimed request to a technician, moving it to
// in_progress. Fails with ErrAlreadyAssigned when another technician
// holds it and ErrNotFound when the id does not exist. The assignment
// and status change are one atomic store update.
func (m *Manager) Claim(requestID, technicianID int64) (*models.TaskView, error) {
	affected, err := m.store.ClaimRequest(requestID, technicianID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to claim request %d: %w", requestID, err)
	}

	if affected == 0 {
		exists, err := m.store.RequestExists(requestID)
		if err != nil {
			return nil, fmt.Errorf("failed to check request %d: %w", requestID, err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrAlreadyAssigned
	}

	return m.view(requestID)
}

// UpdateStatus moves a request to in_progress, completed or cancelled.
// Moving back to new is not permitted - new is only the creation state.
// A completed transition also stamps completed_at. Transitions are not
// otherwise validated against the current state: completed→cancelled
// is allowed, matching dispatcher expectations.
func (m *Manager) UpdateStatus(requestID int64, newStatus string) (*models.TaskView, error) {
	switch newStatus {
	case models.StatusInProgress, models.StatusCompleted, models.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	var completedAt *time.Time
	if newStatus == models.StatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	affected, err := m.store.SetRequestStatus(requestID, newStatus, completedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update request %d: %w", requestID, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return m.view(requestID)
}

// CreateByTechnician files a request for equipment discovered on site:
// a new client, a new device and a request pre-assigned to the
// technician with status in_progress (the new state is skipped). The
// store inserts all three rows or none.
func (m *Manager) CreateByTechnician(p AssignedRequestParams) (int64, error) {
	if p.ClientName == "" || p.DeviceModel == "" || p.Description == "" || p.TechnicianID == 0 {
		return 0, ErrMissingFields
	}

	if p.DeviceType == "" {
		p.DeviceType = models.DefaultDeviceType
	}
	if p.Priority == "" {
		p.Priority = models.PriorityNormal
	}

	id, err := m.store.CreateAssignedRequest(p, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	return id, nil
}

// CreateIntake files an unassigned request with status new against an
// existing client and device. This is the unauthenticated intake path;
// the request becomes visible to every technician's available view.
func (m *Manager) CreateIntake(p UnassignedRequestParams) (int64, error) {
	if p.ClientID == 0 || p.DeviceID == 0 || p.Description == "" {
		return 0, ErrMissingFields
	}
	if p.Priority == "" {
		p.Priority = models.PriorityNormal
	}

	id, err := m.store.CreateUnassignedRequest(p, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to create intake request: %w", err)
	}
	return id, nil
}

// ListForTechnician assembles the three task views: active (assigned,
// not completed), history (assigned, completed, 20 most recent) and
// available (unassigned and new - identical for every technician).
func (m *Manager) ListForTechnician(technicianID int64) (*TechnicianTasks, error) {
	active, err := m.store.ListActive(technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}

	history, err := m.store.ListHistory(technicianID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history tasks: %w", err)
	}

	available, err := m.store.ListAvailable()
	if err != nil {
		return nil, fmt.Errorf("failed to list available tasks: %w", err)
	}

	return &TechnicianTasks{
		Active:    active,
		History:   history,
		Available: available,
	}, nil
}

// ListAvailable returns the unassigned new requests on their own.
func (m *Manager) ListAvailable() ([]models.TaskView, error) {
	return m.store.ListAvailable()
}

func (m *Manager) view(requestID int64) (*models.TaskView, error) {
	view, err := m.store.GetRequestView(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request %d: %w", requestID, err)
	}
	if view == nil {
		return nil, ErrNotFound
	}
	return view, nil
}
