// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/fieldserve/cliparse"
	"github.com/danielhkuo/fieldserve/handlers"
	"github.com/danielhkuo/fieldserve/lifecycle"
	"github.com/danielhkuo/fieldserve/middleware"
	"github.com/danielhkuo/fieldserve/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)
	manager := lifecycle.NewManager(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg)
	taskHandler := handlers.NewTaskHandler(manager)
	requestHandler := handlers.NewRequestHandler(manager, st)
	directoryHandler := handlers.NewDirectoryHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/login", middleware.WithLogging(authHandler.Login))

	// Technician task views and mutations
	mux.HandleFunc("GET /api/technician/{id}/tasks", middleware.WithLogging(taskHandler.GetTechnicianTasks))
	mux.HandleFunc("GET /api/tasks/available", middleware.WithLogging(taskHandler.GetAvailableTasks))
	mux.HandleFunc("POST /api/task/{id}/take", middleware.WithLogging(taskHandler.TakeTask))
	mux.HandleFunc("POST /api/task/{id}/status", middleware.WithLogging(taskHandler.UpdateTaskStatus))

	// Request creation and dashboard
	mux.HandleFunc("POST /api/requests/technician", middleware.WithLogging(requestHandler.CreateByTechnician))
	mux.HandleFunc("POST /api/requests", middleware.WithLogging(requestHandler.CreateIntake))
	mux.HandleFunc("GET /api/requests", middleware.WithLogging(requestHandler.ListRequests))

	// Directory
	mux.HandleFunc("GET /api/technicians", middleware.WithLogging(directoryHandler.GetTechnicians))
	mux.HandleFunc("GET /api/clients", middleware.WithLogging(directoryHandler.GetClients))
	mux.HandleFunc("GET /api/devices", middleware.WithLogging(directoryHandler.GetDevices))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(directoryHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fieldserve API v1"))
	})

	return mux
}
