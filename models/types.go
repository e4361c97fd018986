package models

import "time"

// Request status constants
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Request priority constants
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Users only ever hold one role
const RoleTechnician = "technician"

// DefaultDeviceType is used when a technician files a request without
// naming the equipment type
const DefaultDeviceType = "cash register"

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TakeTaskRequest struct {
	TechnicianID int64 `json:"technician_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateTechnicianRequestRequest struct {
	ClientName   string `json:"client_name"`
	ClientPhone  string `json:"client_phone"`
	DeviceModel  string `json:"device_model"`
	SerialNumber string `json:"serial_number"`
	DeviceType   string `json:"device_type"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	TechnicianID int64  `json:"technician_id"`
}

type CreateIntakeRequest struct {
	ClientID    int64  `json:"client_id"`
	DeviceID    int64  `json:"device_id"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Response types

type LoginResponse struct {
	Success bool       `json:"success"`
	User    Technician `json:"user"`
}

type TechnicianTasksResponse struct {
	ActiveTasks    []TaskView `json:"active_tasks"`
	HistoryTasks   []TaskView `json:"history_tasks"`
	AvailableTasks []TaskView `json:"available_tasks"`
	Stats          TaskStats  `json:"stats"`
}

type TaskStats struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Available int `json:"available"`
}

type TaskActionResponse struct {
	Success bool     `json:"success"`
	Task    TaskView `json:"task"`
	Message string   `json:"message"`
}

type CreateRequestResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type StatsResponse struct {
	Total       int `json:"total"`
	New         int `json:"new"`
	InProgress  int `json:"in_progress"`
	Completed   int `json:"completed"`
	Technicians int `json:"technicians"`
}

// Domain types

type Technician struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}

type Client struct {
	ID           int64     `json:"id"`
	CompanyName  string    `json:"company_name"`
	Address      *string   `json:"address,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Device struct {
	ID           int64      `json:"id"`
	ClientID     int64      `json:"client_id"`
	SerialNumber *string    `json:"serial_number,omitempty"`
	Model        string     `json:"model"`
	DeviceType   *string    `json:"device_type,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
}

type Request struct {
	ID                   int64      `json:"id"`
	ClientID             int64      `json:"client_id"`
	DeviceID             int64      `json:"device_id"`
	AssignedTechnicianID *int64     `json:"assigned_technician_id,omitempty"`
	Description          string     `json:"description"`
	Status               string     `json:"status"`
	Priority             string     `json:"priority"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	PhotoPath            *string    `json:"photo_path,omitempty"`
	ClientSignaturePath  *string    `json:"client_signature_path,omitempty"`
}

// TaskView is a request joined with its client, device and technician
// summary - the shape every listing and mutation endpoint returns
type TaskView struct {
	Request
	CompanyName    *string `json:"company_name,omitempty"`
	Address        *string `json:"address,omitempty"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
	SerialNumber   *string `json:"serial_number,omitempty"`
	Model          *string `json:"model,omitempty"`
	DeviceType     *string `json:"device_type,omitempty"`
	TechnicianName *string `json:"technician_name,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
