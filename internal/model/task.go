package model

import "time"

// TaskStatus enumerates the task lifecycle states.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task links one farmer and one officer with a free-text description. Status
// starts at pending and is only changed by the owning officer.
type Task struct {
	ID          uint64     `json:"id"`
	FarmerID    uint64     `json:"farmer_id"`
	OfficerID   uint64     `json:"officer_id"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
