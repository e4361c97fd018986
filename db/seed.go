// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedDemoData inserts the demo technicians, clients, devices and
// requests used for local development. It is a no-op when the users
// table is already populated.
func SeedDemoData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check demo data: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	technicians := []struct {
		email, name string
	}{
		{"andrii@eurocode.ua", "Andrii Tekhnik"},
		{"sergii@eurocode.ua", "Serhii Maister"},
		{"maksym@eurocode.ua", "Maksym Spetsialist"},
		{"ivan@eurocode.ua", "Ivan Tekhnik"},
		{"petro@eurocode.ua", "Petro Remontnyk"},
	}

	techIDs := make([]int64, 0, len(technicians))
	for _, tech := range technicians {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (email, full_name, role, created_at)
			VALUES ($1, $2, 'technician', $3)
			RETURNING id
		`, tech.email, tech.name, now).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed technician %s: %w", tech.email, err)
		}
		techIDs = append(techIDs, id)
	}

	clients := []struct {
		name, address, phone, email string
	}{
		{"TOV Eurocode", "1 Testova St, Kyiv", "+380501234567", "info@eurocode.com.ua"},
		{"Cafe Lvivska", "25 Shevchenka St, Lviv", "+380672345678", "cafe@lvivska.ua"},
		{"Apteka Zdorovia", "12 Likarska St, Kyiv", "+380631234567", "apteka@zdorovya.ua"},
		{"Mahazyn Elektronika", "8 Tekhnichna St, Kyiv", "+380501112233", "shop@elektronika.ua"},
	}

	clientIDs := make([]int64, 0, len(clients))
	for _, c := range clients {
		var id int64
		err := db.QueryRow(`
			INSERT INTO clients (company_name, address, contact_phone, contact_email, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, c.name, c.address, c.phone, c.email, now).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed client %s: %w", c.name, err)
		}
		clientIDs = append(clientIDs, id)
	}

	devices := []struct {
		clientIdx            int
		serial, model, dtype string
	}{
		{0, "KAS-2024-001", "ATOL 90F", "cash register"},
		{0, "FIS-2024-002", "RICH 1800K", "fiscal printer"},
		{1, "KAS-2024-003", "ATOL 55F", "cash register"},
		{2, "FIS-2024-004", "POS-80", "fiscal printer"},
		{3, "KAS-2024-005", "MINI MARKET MM-300", "cash register"},
	}

	deviceIDs := make([]int64, 0, len(devices))
	for _, d := range devices {
		var id int64
		err := db.QueryRow(`
			INSERT INTO devices (client_id, serial_number, model, device_type)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, clientIDs[d.clientIdx], d.serial, d.model, d.dtype).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed device %s: %w", d.serial, err)
		}
		deviceIDs = append(deviceIDs, id)
	}

	requests := []struct {
		clientIdx, deviceIdx int
		techIdx              int // -1 for unassigned
		description          string
		status, priority     string
	}{
		{1, 2, 0, "Does not print receipts, paper error", "in_progress", "high"},
		{2, 3, 1, "Internal component cleaning", "in_progress", "normal"},
		{0, 0, -1, "Cash register calibration check", "new", "normal"},
		{3, 4, -1, "Configure 1C connection", "new", "high"},
	}

	for _, req := range requests {
		var techID *int64
		if req.techIdx >= 0 {
			techID = &techIDs[req.techIdx]
		}
		_, err := db.Exec(`
			INSERT INTO requests (client_id, device_id, assigned_technician_id, description, status, priority, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, clientIDs[req.clientIdx], deviceIDs[req.deviceIdx], techID, req.description, req.status, req.priority, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed request: %w", err)
		}
	}

	return nil
}
