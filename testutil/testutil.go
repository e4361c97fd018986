// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/fieldserve/cliparse"
	"github.com/danielhkuo/fieldserve/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own uniquely named shared-cache database
// so parallel tests never collide; a single pooled connection keeps
// the memory database alive and serializes writers.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5000,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		SystemPassword: "test-system-password",
	}
}

// CreateTestTechnician inserts a technician row and returns its id
func CreateTestTechnician(t *testing.T, conn *sql.DB, email, fullName string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (email, full_name, role, created_at)
		VALUES ($1, $2, 'technician', $3)
		RETURNING id
	`, email, fullName, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test technician: %v", err)
	}
	return id
}

// CreateTestClient inserts a client row and returns its id
func CreateTestClient(t *testing.T, conn *sql.DB, companyName string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO clients (company_name, address, contact_phone, created_at)
		VALUES ($1, '1 Test St', '+380000000000', $2)
		RETURNING id
	`, companyName, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return id
}

// CreateTestDevice inserts a device owned by the client and returns its id
func CreateTestDevice(t *testing.T, conn *sql.DB, clientID int64, model string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO devices (client_id, serial_number, model, device_type)
		VALUES ($1, 'SN-TEST', $2, 'cash register')
		RETURNING id
	`, clientID, model).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test device: %v", err)
	}
	return id
}

// CreateTestRequest inserts a request and returns its id.
// technicianID may be nil for an unassigned request.
func CreateTestRequest(t *testing.T, conn *sql.DB, clientID, deviceID int64, technicianID *int64, status string) int64 {
	t.Helper()

	now := time.Now()
	var completedAt *time.Time
	if status == "completed" {
		completedAt = &now
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO requests (client_id, device_id, assigned_technician_id, description, status, priority, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, 'Test repair request', $4, 'normal', $5, $6, $7)
		RETURNING id
	`, clientID, deviceID, technicianID, status, now, now, completedAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test request: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
