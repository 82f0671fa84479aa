package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jithinvs/krishi-mitra/internal/model"
)

// TaskRepo persists tasks linking farmers and officers. The officer's task
// reference list is the tasks table keyed by officer_id in creation order.
type TaskRepo struct{ DB *sql.DB }

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{DB: db} }

// Create inserts a pending task and returns it.
func (r *TaskRepo) Create(ctx context.Context, farmerID, officerID uint64, description string) (model.Task, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tasks (farmer_id, officer_id, description) VALUES (?,?,?)",
		farmerID, officerID, description)
	if err != nil {
		return model.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

const taskCols = "id,farmer_id,officer_id,description,status,created_at,updated_at"

// GetByID fetches one task.
func (r *TaskRepo) GetByID(ctx context.Context, id uint64) (model.Task, error) {
	var t model.Task
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE id=? LIMIT 1", id).
		Scan(&t.ID, &t.FarmerID, &t.OfficerID, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	return t, err
}

// UpdateStatus moves a task through its lifecycle. Only the owning officer
// may transition a task; anyone else gets ErrForbidden.
func (r *TaskRepo) UpdateStatus(ctx context.Context, taskID, officerID uint64, status model.TaskStatus) (model.Task, error) {
	t, err := r.GetByID(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}
	if t.OfficerID != officerID {
		return model.Task{}, ErrForbidden
	}
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE tasks SET status=? WHERE id=?", status, taskID); err != nil {
		return model.Task{}, err
	}
	return r.GetByID(ctx, taskID)
}

// ListByOfficer returns the officer's tasks in creation order.
func (r *TaskRepo) ListByOfficer(ctx context.Context, officerID uint64) ([]model.Task, error) {
	return r.list(ctx, "officer_id", officerID)
}

// ListByFarmer returns the tasks assigned to a farmer in creation order.
func (r *TaskRepo) ListByFarmer(ctx context.Context, farmerID uint64) ([]model.Task, error) {
	return r.list(ctx, "farmer_id", farmerID)
}

func (r *TaskRepo) list(ctx context.Context, col string, id uint64) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE "+col+"=? ORDER BY id", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.FarmerID, &t.OfficerID, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
