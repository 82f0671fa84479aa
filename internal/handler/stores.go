package handler

import (
	"context"

	"github.com/jithinvs/krishi-mitra/internal/model"
)

// Store interfaces consumed by the handlers. The repository package provides
// the MySQL implementations; tests substitute in-memory fakes.

type FarmerStore interface {
	Create(ctx context.Context, name, phone, password, location string, cost int) (uint64, error)
	GetByPhone(ctx context.Context, phone string) (model.Farmer, error)
	GetByID(ctx context.Context, id uint64) (model.Farmer, error)
}

type OfficerStore interface {
	Create(ctx context.Context, o model.Officer, password string, cost int) (uint64, error)
	GetByLicense(ctx context.Context, license string) (model.Officer, error)
	GetByID(ctx context.Context, id uint64) (model.Officer, error)
}

type ChatStore interface {
	Append(ctx context.Context, farmerID uint64, sender, text string) (model.ChatMessage, error)
	ListByFarmer(ctx context.Context, farmerID uint64) ([]model.ChatMessage, error)
}

type TaskStore interface {
	Create(ctx context.Context, farmerID, officerID uint64, description string) (model.Task, error)
	UpdateStatus(ctx context.Context, taskID, officerID uint64, status model.TaskStatus) (model.Task, error)
	ListByOfficer(ctx context.Context, officerID uint64) ([]model.Task, error)
	ListByFarmer(ctx context.Context, farmerID uint64) ([]model.Task, error)
}
