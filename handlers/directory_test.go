// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/fieldserve/models"
	"github.com/danielhkuo/fieldserve/store"
	"github.com/danielhkuo/fieldserve/testutil"
)

func TestGetStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewDirectoryHandler(store.New(conn))

	techID := testutil.CreateTestTechnician(t, conn, "andrii@eurocode.ua", "Andrii Tekhnik")
	clientID := testutil.CreateTestClient(t, conn, "Cafe Lvivska")
	deviceID := testutil.CreateTestDevice(t, conn, clientID, "ATOL 90F")

	testutil.CreateTestRequest(t, conn, clientID, deviceID, nil, "new")
	testutil.CreateTestRequest(t, conn, clientID, deviceID, nil, "new")
	testutil.CreateTestRequest(t, conn, clientID, deviceID, &techID, "in_progress")
	testutil.CreateTestRequest(t, conn, clientID, deviceID, &techID, "completed")

	req := testutil.MakeRequest("GET", "/api/stats", nil, nil)
	w := httptest.NewRecorder()
	handler.GetStats(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)

	if stats.Total != 4 {
		t.Errorf("Expected 4 total requests, got %d", stats.Total)
	}
	if stats.New != 2 {
		t.Errorf("Expected 2 new requests, got %d", stats.New)
	}
	if stats.InProgress != 1 {
		t.Errorf("Expected 1 in-progress request, got %d", stats.InProgress)
	}
	if stats.Completed != 1 {
		t.Errorf("Expected 1 completed request, got %d", stats.Completed)
	}
	if stats.Technicians != 1 {
		t.Errorf("Expected 1 technician, got %d", stats.Technicians)
	}
}

func TestGetTechniciansSorted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewDirectoryHandler(store.New(conn))

	testutil.CreateTestTechnician(t, conn, "petro@eurocode.ua", "Petro Remontnyk")
	testutil.CreateTestTechnician(t, conn, "andrii@eurocode.ua", "Andrii Tekhnik")
	testutil.CreateTestTechnician(t, conn, "maksym@eurocode.ua", "Maksym Spetsialist")

	req := testutil.MakeRequest("GET", "/api/technicians", nil, nil)
	w := httptest.NewRecorder()
	handler.GetTechnicians(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var technicians []models.Technician
	testutil.AssertJSON(t, w, &technicians)

	if len(technicians) != 3 {
		t.Fatalf("Expected 3 technicians, got %d", len(technicians))
	}
	want := []string{"Andrii Tekhnik", "Maksym Spetsialist", "Petro Remontnyk"}
	for i, name := range want {
		if technicians[i].FullName != name {
			t.Errorf("Expected %q at position %d, got %q", name, i, technicians[i].FullName)
		}
	}
}

func TestGetClientsSorted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewDirectoryHandler(store.New(conn))

	testutil.CreateTestClient(t, conn, "TOV Eurocode")
	testutil.CreateTestClient(t, conn, "Apteka Zdorovia")

	req := testutil.MakeRequest("GET", "/api/clients", nil, nil)
	w := httptest.NewRecorder()
	handler.GetClients(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var clients []models.Client
	testutil.AssertJSON(t, w, &clients)

	if len(clients) != 2 {
		t.Fatalf("Expected 2 clients, got %d", len(clients))
	}
	if clients[0].CompanyName != "Apteka Zdorovia" || clients[1].CompanyName != "TOV Eurocode" {
		t.Errorf("Expected clients sorted by company name, got %q then %q",
			clients[0].CompanyName, clients[1].CompanyName)
	}
}

func TestGetDevices(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewDirectoryHandler(store.New(conn))

	clientID := testutil.CreateTestClient(t, conn, "Apteka Zdorovia")
	testutil.CreateTestDevice(t, conn, clientID, "POS-80")
	testutil.CreateTestDevice(t, conn, clientID, "ATOL 90F")

	req := testutil.MakeRequest("GET", "/api/devices", nil, nil)
	w := httptest.NewRecorder()
	handler.GetDevices(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var devices []models.Device
	testutil.AssertJSON(t, w, &devices)

	if len(devices) != 2 {
		t.Fatalf("Expected 2 devices, got %d", len(devices))
	}
	if devices[0].Model != "ATOL 90F" {
		t.Errorf("Expected devices sorted by model, got %q first", devices[0].Model)
	}
	if devices[0].ClientID != clientID {
		t.Errorf("Expected device tied to client %d, got %d", clientID, devices[0].ClientID)
	}
}

func TestGetDevicesEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewDirectoryHandler(store.New(conn))

	req := testutil.MakeRequest("GET", "/api/devices", nil, nil)
	w := httptest.NewRecorder()
	handler.GetDevices(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var devices []models.Device
	testutil.AssertJSON(t, w, &devices)
	if len(devices) != 0 {
		t.Errorf("Expected empty device list, got %d", len(devices))
	}
}
