package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/queue"
	"github.com/jithinvs/krishi-mitra/internal/repository"
	queue_publisher "github.com/jithinvs/krishi-mitra/internal/service"
)

// TaskHandler serves the officer task endpoints plus the farmer's read-only
// task list. Assignments are announced on the message broker; a broker
// failure never fails the request.
type TaskHandler struct {
	Tasks   TaskStore
	Farmers FarmerStore

	// publish allows tests to intercept broker traffic.
	publish func(ctx context.Context, ev queue.TaskAssignedEvent) error
}

func NewTaskHandler(tasks TaskStore, farmers FarmerStore) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Farmers: farmers, publish: queue_publisher.PublishTaskAssigned}
}

type taskCreateReq struct {
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type taskStatusReq struct {
	Status string `json:"status"`
}

// Create assigns a new pending task to the farmer identified by phone.
func (h *TaskHandler) Create(c echo.Context) error {
	officer, ok := c.Get("account").(model.Officer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	var req taskCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	farmer, err := h.Farmers.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No farmer found with that phone"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	task, err := h.Tasks.Create(ctx, farmer.ID, officer.ID, strings.TrimSpace(req.Description))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	// Best effort; the publisher logs its own failures.
	_ = h.publish(c.Request().Context(), queue.TaskAssignedEvent{
		TaskID:      task.ID,
		FarmerID:    farmer.ID,
		FarmerName:  farmer.Name,
		FarmerPhone: farmer.Phone,
		OfficerID:   officer.ID,
		OfficerName: officer.Name,
		Description: task.Description,
		Status:      string(task.Status),
		AssignedAt:  task.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{"message": "Task assigned successfully", "task": task})
}

// UpdateStatus transitions a task through pending → in-progress → completed.
// Only the owning officer may move it.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	officer, ok := c.Get("account").(model.Officer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid task id"})
	}

	var req taskStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	status := model.TaskStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "status must be pending, in-progress or completed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	task, err := h.Tasks.UpdateStatus(ctx, taskID, officer.ID, status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Task not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Task belongs to another officer"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task updated", "task": task})
}

// ListForOfficer returns the officer's tasks in creation order.
func (h *TaskHandler) ListForOfficer(c echo.Context) error {
	officer, ok := c.Get("account").(model.Officer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByOfficer(ctx, officer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

// ListForFarmer returns the tasks assigned to the authenticated farmer.
func (h *TaskHandler) ListForFarmer(c echo.Context) error {
	farmer, ok := c.Get("account").(model.Farmer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByFarmer(ctx, farmer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}
