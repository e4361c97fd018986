// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/fieldserve/models"
)

// FindOrCreateTechnician resolves a technician row by email, creating
// it on first login. The returned id is always the persisted row id,
// so it stays stable across restarts.
func (s *Store) FindOrCreateTechnician(email, fullName string) (models.Technician, error) {
	tech, err := s.technicianByEmail(email)
	if err == nil {
		return tech, nil
	}
	if err != sql.ErrNoRows {
		return models.Technician{}, fmt.Errorf("failed to look up technician: %w", err)
	}

	var id int64
	insertErr := s.db.QueryRow(`
		INSERT INTO users (email, full_name, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, email, fullName, models.RoleTechnician, time.Now()).Scan(&id)
	if insertErr != nil {
		// A concurrent first login for the same email may have won the
		// unique constraint. Re-read before giving up.
		if tech, err := s.technicianByEmail(email); err == nil {
			return tech, nil
		}
		return models.Technician{}, fmt.Errorf("failed to create technician: %w", insertErr)
	}

	return models.Technician{
		ID:       id,
		Email:    email,
		FullName: fullName,
		Role:     models.RoleTechnician,
	}, nil
}

func (s *Store) technicianByEmail(email string) (models.Technician, error) {
	var tech models.Technician
	err := s.db.QueryRow(`
		SELECT id, email, full_name, role, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&tech.ID, &tech.Email, &tech.FullName, &tech.Role, &tech.CreatedAt)
	return tech, err
}

// ListTechnicians returns all technicians ordered by name.
func (s *Store) ListTechnicians() ([]models.Technician, error) {
	rows, err := s.db.Query(`
		SELECT id, email, full_name, role, created_at
		FROM users
		WHERE role = $1
		ORDER BY full_name
	`, models.RoleTechnician)
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	defer rows.Close()

	technicians := []models.Technician{}
	for rows.Next() {
		var tech models.Technician
		if err := rows.Scan(&tech.ID, &tech.Email, &tech.FullName, &tech.Role, &tech.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan technician: %w", err)
		}
		technicians = append(technicians, tech)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate technicians: %w", err)
	}
	return technicians, nil
}
