// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/fieldserve/lifecycle"
	"github.com/danielhkuo/fieldserve/models"
)

// Store implements lifecycle.Store and the read layer on database/sql.
// Queries use $N placeholders, which both lib/pq and modernc sqlite
// accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// taskViewColumns is the joined projection every task query selects.
const taskViewColumns = `
	r.id, r.client_id, r.device_id, r.assigned_technician_id,
	r.description, r.status, r.priority,
	r.created_at, r.updated_at, r.completed_at,
	r.photo_path, r.client_signature_path,
	c.company_name, c.address, c.contact_phone,
	d.serial_number, d.model, d.device_type`

const taskViewJoins = `
	FROM requests r
	LEFT JOIN clients c ON r.client_id = c.id
	LEFT JOIN devices d ON r.device_id = d.id`

// RequestExists reports whether a request row exists.
func (s *Store) RequestExists(id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check request existence: %w", err)
	}
	return exists, nil
}

// ClaimRequest assigns a technician to a request only while it is
// unassigned. The NULL guard makes the read-check-then-write a single
// atomic statement; the caller decides between NotFound and
// AlreadyAssigned when no row was touched.
func (s *Store) ClaimRequest(id, technicianID int64, now time.Time) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE requests
		SET assigned_technician_id = $1, status = $2, updated_at = $3
		WHERE id = $4 AND assigned_technician_id IS NULL
	`, technicianID, models.StatusInProgress, now, id)
	if err != nil {
		return 0, fmt.Errorf("failed to claim request: %w", err)
	}
	return res.RowsAffected()
}

// SetRequestStatus updates the status column and, for completed
// transitions, the completed_at column. No other field changes.
func (s *Store) SetRequestStatus(id int64, status string, completedAt *time.Time) (int64, error) {
	var res sql.Result
	var err error

	if completedAt != nil {
		res, err = s.db.Exec(`
			UPDATE requests
			SET status = $1, completed_at = $2
			WHERE id = $3
		`, status, *completedAt, id)
	} else {
		res, err = s.db.Exec(`
			UPDATE requests
			SET status = $1
			WHERE id = $2
		`, status, id)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update request status: %w", err)
	}
	return res.RowsAffected()
}

// CreateAssignedRequest inserts the client, device and pre-assigned
// request in one transaction. Either all three rows land or none.
func (s *Store) CreateAssignedRequest(p lifecycle.AssignedRequestParams, now time.Time) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var clientID int64
	err = tx.QueryRow(`
		INSERT INTO clients (company_name, contact_phone, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, p.ClientName, p.ClientPhone, now).Scan(&clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}

	var deviceID int64
	err = tx.QueryRow(`
		INSERT INTO devices (client_id, model, serial_number, device_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, clientID, p.DeviceModel, p.SerialNumber, p.DeviceType).Scan(&deviceID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert device: %w", err)
	}

	var requestID int64
	err = tx.QueryRow(`
		INSERT INTO requests (client_id, device_id, assigned_technician_id, description, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, clientID, deviceID, p.TechnicianID, p.Description, models.StatusInProgress, p.Priority, now, now).Scan(&requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit request creation: %w", err)
	}
	return requestID, nil
}

// CreateUnassignedRequest inserts an intake request with status new
// against an existing client and device.
func (s *Store) CreateUnassignedRequest(p lifecycle.UnassignedRequestParams, now time.Time) (int64, error) {
	var requestID int64
	err := s.db.QueryRow(`
		INSERT INTO requests (client_id, device_id, description, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, p.ClientID, p.DeviceID, p.Description, models.StatusNew, p.Priority, now, now).Scan(&requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert intake request: %w", err)
	}
	return requestID, nil
}

// GetRequestView loads a single joined request view. Returns nil when
// the id does not exist.
func (s *Store) GetRequestView(id int64) (*models.TaskView, error) {
	row := s.db.QueryRow(`
		SELECT `+taskViewColumns+taskViewJoins+`
		WHERE r.id = $1
	`, id)

	view, err := scanTaskView(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load request view: %w", err)
	}
	return view, nil
}

// ListActive returns a technician's non-completed assignments, new
// first, then in_progress, newest first within each rank.
func (s *Store) ListActive(technicianID int64) ([]models.TaskView, error) {
	rows, err := s.db.Query(`
		SELECT `+taskViewColumns+taskViewJoins+`
		WHERE r.assigned_technician_id = $1 AND r.status != $2
		ORDER BY
			CASE WHEN r.status = 'new' THEN 1
			     WHEN r.status = 'in_progress' THEN 2
			     ELSE 3 END,
			r.created_at DESC
	`, technicianID, models.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list active requests: %w", err)
	}
	return collectTaskViews(rows)
}

// ListHistory returns a technician's completed assignments, most
// recently completed first.
func (s *Store) ListHistory(technicianID int64, limit int) ([]models.TaskView, error) {
	rows, err := s.db.Query(`
		SELECT `+taskViewColumns+taskViewJoins+`
		WHERE r.assigned_technician_id = $1 AND r.status = $2
		ORDER BY r.completed_at DESC
		LIMIT $3
	`, technicianID, models.StatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed requests: %w", err)
	}
	return collectTaskViews(rows)
}

// ListAvailable returns every unassigned request with status new,
// newest first. The view is identical for all technicians.
func (s *Store) ListAvailable() ([]models.TaskView, error) {
	rows, err := s.db.Query(`
		SELECT ` + taskViewColumns + taskViewJoins + `
		WHERE r.assigned_technician_id IS NULL AND r.status = 'new'
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list available requests: %w", err)
	}
	return collectTaskViews(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskView(row scanner) (*models.TaskView, error) {
	var v models.TaskView
	err := row.Scan(
		&v.ID, &v.ClientID, &v.DeviceID, &v.AssignedTechnicianID,
		&v.Description, &v.Status, &v.Priority,
		&v.CreatedAt, &v.UpdatedAt, &v.CompletedAt,
		&v.PhotoPath, &v.ClientSignaturePath,
		&v.CompanyName, &v.Address, &v.ContactPhone,
		&v.SerialNumber, &v.Model, &v.DeviceType,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectTaskViews(rows *sql.Rows) ([]models.TaskView, error) {
	defer rows.Close()

	views := []models.TaskView{}
	for rows.Next() {
		v, err := scanTaskView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		views = append(views, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate request rows: %w", err)
	}
	return views, nil
}
