// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/fieldserve/lifecycle"
	"github.com/danielhkuo/fieldserve/models"
	"github.com/danielhkuo/fieldserve/store"
	"github.com/danielhkuo/fieldserve/testutil"
)

func newTaskHandler(conn *sql.DB) *TaskHandler {
	return NewTaskHandler(lifecycle.NewManager(store.New(conn)))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// insertRequestAt inserts a request with explicit timestamps so
// ordering assertions are deterministic.
func insertRequestAt(t *testing.T, conn *sql.DB, clientID, deviceID int64, technicianID *int64, status string, createdAt time.Time, completedAt *time.Time) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO requests (client_id, device_id, assigned_technician_id, description, status, priority, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, 'Ordering fixture', $4, 'normal', $5, $5, $6)
		RETURNING id
	`, clientID, deviceID, technicianID, status, createdAt, completedAt).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert request: %v", err)
	}
	return id
}

func TestTakeTask(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newTaskHandler(conn)

	techID := testutil.CreateTestTechnician(t, conn, "andrii@eurocode.ua", "Andrii Tekhnik")
	otherID := testutil.CreateTestTechnician(t, conn, "ivan@eurocode.ua", "Ivan Tekhnik")
	clientID := testutil.CreateTestClient(t, conn, "Cafe Lvivska")
	deviceID := testutil.CreateTestDevice(t, conn, clientID, "ATOL 90F")

	openID := testutil.CreateTestRequest(t, conn, clientID, deviceID, nil, "new")
	takenID := testutil.CreateTestRequest(t, conn, clientID, deviceID, &otherID, "in_progress")

	take := func(taskID string, body interface{}) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/api/task/"+taskID+"/take", body, nil)
		req.SetPathValue("id", taskID)
		w := httptest.NewRecorder()
		handler.TakeTask(w, req)
		return w
	}

	t.Run("claims an unassigned task", func(t *testing.T) {
		w := take(formatID(openID), models.TakeTaskRequest{TechnicianID: techID})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.TaskActionResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Task.Status != models.StatusInProgress {
			t.Errorf("Expected status in_progress, got %q", resp.Task.Status)
		}
		if resp.Task.AssignedTechnicianID == nil || *resp.Task.AssignedTechnicianID != techID {
			t.Errorf("Expected assignment to technician %d, got %v", techID, resp.Task.AssignedTechnicianID)
		}
		if resp.Task.CompanyName == nil || *resp.Task.CompanyName != "Cafe Lvivska" {
			t.Errorf("Expected joined client summary, got %v", resp.Task.CompanyName)
		}
	})

	t.Run("second claim loses", func(t *testing.T) {
		w := take(formatID(openID), models.TakeTaskRequest{TechnicianID: otherID})
		testutil.AssertStatus(t, w, http.StatusConflict)

		// The original assignment is untouched
		var assigned int64
		if err := conn.QueryRow(`SELECT assigned_technician_id FROM requests WHERE id = $1`, openID).Scan(&assigned); err != nil {
			t.Fatalf("Failed to query assignment: %v", err)
		}
		if assigned != techID {
			t.Errorf("Expected assignment to stay with %d, got %d", techID, assigned)
		}
	})

	t.Run("already assigned task", func(t *testing.T) {
		w := take(formatID(takenID), models.TakeTaskRequest{TechnicianID: techID})
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("unknown task id", func(t *testing.T) {
		w := take("99999", models.TakeTaskRequest{TechnicianID: techID})
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("missing technician id", func(t *testing.T) {
		w := take(formatID(openID), models.TakeTaskRequest{})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("non-numeric task id", func(t *testing.T) {
		w := take("abc", models.TakeTaskRequest{TechnicianID: techID})
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestUpdateTaskStatus(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newTaskHandler(conn)

	techID := testutil.CreateTestTechnician(t, conn, "sergii@eurocode.ua", "Serhii Maister")
	clientID := testutil.CreateTestClient(t, conn, "Apteka Zdorovia")
	deviceID := testutil.CreateTestDevice(t, conn, clientID, "POS-80")
	taskID := testutil.CreateTestRequest(t, conn, clientID, deviceID, &techID, "in_progress")

	update := func(taskID string, status string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/api/task/"+taskID+"/status", models.UpdateStatusRequest{Status: status}, nil)
		req.SetPathValue("id", taskID)
		w := httptest.NewRecorder()
		handler.UpdateTaskStatus(w, req)
		return w
	}

	completedAt := func() *time.Time {
		t.Helper()
		var ts *time.Time
		if err := conn.QueryRow(`SELECT completed_at FROM requests WHERE id = $1`, taskID).Scan(&ts); err != nil {
			t.Fatalf("Failed to query completed_at: %v", err)
		}
		return ts
	}

	t.Run("rejects invalid status", func(t *testing.T) {
		for _, status := range []string{"new", "done", ""} {
			w := update(formatID(taskID), status)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		}

		var status string
		if err := conn.QueryRow(`SELECT status FROM requests WHERE id = $1`, taskID).Scan(&status); err != nil {
			t.Fatalf("Failed to query status: %v", err)
		}
		if status != models.StatusInProgress {
			t.Errorf("Expected status unchanged, got %q", status)
		}
	})

	t.Run("cancelled leaves completed_at null", func(t *testing.T) {
		w := update(formatID(taskID), models.StatusCancelled)
		testutil.AssertStatus(t, w, http.StatusOK)

		if ts := completedAt(); ts != nil {
			t.Errorf("Expected completed_at to stay null, got %v", ts)
		}
	})

	t.Run("completed stamps completed_at", func(t *testing.T) {
		w := update(formatID(taskID), models.StatusCompleted)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.TaskActionResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Task.Status != models.StatusCompleted {
			t.Errorf("Expected status completed, got %q", resp.Task.Status)
		}
		if ts := completedAt(); ts == nil {
			t.Error("Expected completed_at to be set")
		}
	})

	t.Run("completed task may still be cancelled", func(t *testing.T) {
		// Transitions are deliberately permissive; completed_at keeps
		// its old value.
		before := completedAt()
		w := update(formatID(taskID), models.StatusCancelled)
		testutil.AssertStatus(t, w, http.StatusOK)

		after := completedAt()
		if after == nil || before == nil || !after.Equal(*before) {
			t.Errorf("Expected completed_at unchanged, before=%v after=%v", before, after)
		}
	})

	t.Run("unknown task id", func(t *testing.T) {
		w := update("99999", models.StatusCompleted)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestGetTechnicianTasks(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newTaskHandler(conn)

	techID := testutil.CreateTestTechnician(t, conn, "maksym@eurocode.ua", "Maksym Spetsialist")
	otherID := testutil.CreateTestTechnician(t, conn, "petro@eurocode.ua", "Petro Remontnyk")
	clientID := testutil.CreateTestClient(t, conn, "Mahazyn Elektronika")
	deviceID := testutil.CreateTestDevice(t, conn, clientID, "MINI MARKET MM-300")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	done1 := base.Add(1 * time.Hour)
	done2 := base.Add(2 * time.Hour)

	// Active: one in_progress for our technician
	activeID := insertRequestAt(t, conn, clientID, deviceID, &techID, "in_progress", base, nil)
	// History: two completed, the later one must come first
	insertRequestAt(t, conn, clientID, deviceID, &techID, "completed", base, &done1)
	newest := insertRequestAt(t, conn, clientID, deviceID, &techID, "completed", base, &done2)
	// Someone else's work never shows up
	insertRequestAt(t, conn, clientID, deviceID, &otherID, "in_progress", base, nil)
	// Available: unassigned new, newest first
	older := insertRequestAt(t, conn, clientID, deviceID, nil, "new", base.Add(10*time.Minute), nil)
	newer := insertRequestAt(t, conn, clientID, deviceID, nil, "new", base.Add(20*time.Minute), nil)

	req := testutil.MakeRequest("GET", "/api/technician/"+formatID(techID)+"/tasks", nil, nil)
	req.SetPathValue("id", formatID(techID))
	w := httptest.NewRecorder()
	handler.GetTechnicianTasks(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TechnicianTasksResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.ActiveTasks) != 1 || resp.ActiveTasks[0].ID != activeID {
		t.Errorf("Expected exactly the technician's active task, got %+v", resp.ActiveTasks)
	}

	if len(resp.HistoryTasks) != 2 {
		t.Fatalf("Expected 2 history tasks, got %d", len(resp.HistoryTasks))
	}
	if resp.HistoryTasks[0].ID != newest {
		t.Errorf("Expected most recently completed first, got %d", resp.HistoryTasks[0].ID)
	}

	if len(resp.AvailableTasks) != 2 {
		t.Fatalf("Expected 2 available tasks, got %d", len(resp.AvailableTasks))
	}
	if resp.AvailableTasks[0].ID != newer || resp.AvailableTasks[1].ID != older {
		t.Errorf("Expected available tasks newest first, got %+v", resp.AvailableTasks)
	}
	for _, task := range resp.AvailableTasks {
		if task.AssignedTechnicianID != nil {
			t.Errorf("Available task %d has an assignment", task.ID)
		}
	}

	if resp.Stats.Active != 1 || resp.Stats.Completed != 2 || resp.Stats.Available != 2 {
		t.Errorf("Unexpected stats: %+v", resp.Stats)
	}
}

func TestGetAvailableTasks(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newTaskHandler(conn)

	techID := testutil.CreateTestTechnician(t, conn, "ivan@eurocode.ua", "Ivan Tekhnik")
	clientID := testutil.CreateTestClient(t, conn, "TOV Eurocode")
	deviceID := testutil.CreateTestDevice(t, conn, clientID, "RICH 1800K")

	availableID := testutil.CreateTestRequest(t, conn, clientID, deviceID, nil, "new")
	testutil.CreateTestRequest(t, conn, clientID, deviceID, &techID, "in_progress")

	req := testutil.MakeRequest("GET", "/api/tasks/available", nil, nil)
	w := httptest.NewRecorder()
	handler.GetAvailableTasks(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var tasks []models.TaskView
	testutil.AssertJSON(t, w, &tasks)

	if len(tasks) != 1 || tasks[0].ID != availableID {
		t.Errorf("Expected only the unassigned new request, got %+v", tasks)
	}
}
