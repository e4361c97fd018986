// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/fieldserve/models"
)

// ListClients returns all clients ordered by company name.
func (s *Store) ListClients() ([]models.Client, error) {
	rows, err := s.db.Query(`
		SELECT id, company_name, address, contact_phone, contact_email, created_at
		FROM clients
		ORDER BY company_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.Address, &c.ContactPhone, &c.ContactEmail, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}
	return clients, nil
}

// ListDevices returns all devices ordered by model.
func (s *Store) ListDevices() ([]models.Device, error) {
	rows, err := s.db.Query(`
		SELECT id, client_id, serial_number, model, device_type, purchase_date
		FROM devices
		ORDER BY model
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	devices := []models.Device{}
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.ID, &d.ClientID, &d.SerialNumber, &d.Model, &d.DeviceType, &d.PurchaseDate); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate devices: %w", err)
	}
	return devices, nil
}

// ListAllRequests returns every request joined with its client, device
// and technician name, newest first. This is the dispatcher dashboard
// view.
func (s *Store) ListAllRequests() ([]models.TaskView, error) {
	rows, err := s.db.Query(`
		SELECT ` + taskViewColumns + `,
			u.full_name AS technician_name
		` + taskViewJoins + `
		LEFT JOIN users u ON r.assigned_technician_id = u.id
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	views := []models.TaskView{}
	for rows.Next() {
		var v models.TaskView
		err := rows.Scan(
			&v.ID, &v.ClientID, &v.DeviceID, &v.AssignedTechnicianID,
			&v.Description, &v.Status, &v.Priority,
			&v.CreatedAt, &v.UpdatedAt, &v.CompletedAt,
			&v.PhotoPath, &v.ClientSignaturePath,
			&v.CompanyName, &v.Address, &v.ContactPhone,
			&v.SerialNumber, &v.Model, &v.DeviceType,
			&v.TechnicianName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate request rows: %w", err)
	}
	return views, nil
}

// Stats returns the dashboard counters.
func (s *Store) Stats() (models.StatsResponse, error) {
	var stats models.StatsResponse

	counts := []struct {
		dest  *int
		query string
		args  []any
	}{
		{&stats.Total, `SELECT COUNT(*) FROM requests`, nil},
		{&stats.New, `SELECT COUNT(*) FROM requests WHERE status = $1`, []any{models.StatusNew}},
		{&stats.InProgress, `SELECT COUNT(*) FROM requests WHERE status = $1`, []any{models.StatusInProgress}},
		{&stats.Completed, `SELECT COUNT(*) FROM requests WHERE status = $1`, []any{models.StatusCompleted}},
		{&stats.Technicians, `SELECT COUNT(*) FROM users WHERE role = $1`, []any{models.RoleTechnician}},
	}

	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dest); err != nil {
			return models.StatsResponse{}, fmt.Errorf("failed to load stats: %w", err)
		}
	}
	return stats, nil
}
