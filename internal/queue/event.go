// Package queue defines message payloads exchanged over the message broker.
package queue

// TaskAssignedEvent is published when an officer assigns a task to a farmer.
// It carries enough context for downstream consumers (notifications, audit
// logging) without querying the primary database.
type TaskAssignedEvent struct {
	TaskID      uint64 `json:"task_id"`
	FarmerID    uint64 `json:"farmer_id"`
	FarmerName  string `json:"farmer_name"`
	FarmerPhone string `json:"farmer_phone"`
	OfficerID   uint64 `json:"officer_id"`
	OfficerName string `json:"officer_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedAt  string `json:"assigned_at"`
}
