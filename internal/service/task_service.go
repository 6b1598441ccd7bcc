package service

import (
	"context"
	"errors"
	"time"

	"clientportal/internal/events"
	"clientportal/internal/model"
	"clientportal/internal/repository"
	"clientportal/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateTaskInput struct {
	RequestID   string     `json:"request_id" binding:"required,uuid"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	AssigneeID  *string    `json:"assignee_id" binding:"omitempty,uuid"`
	Priority    string     `json:"priority" binding:"required,oneof=High Medium Low"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskInput applies only the fields present in the payload. An explicit
// null clears assignee_id or due_date.
type UpdateTaskInput struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Status      Optional[string]    `json:"status"`
	AssigneeID  Optional[string]    `json:"assignee_id"`
	Priority    Optional[string]    `json:"priority"`
	DueDate     Optional[time.Time] `json:"due_date"`
}

// --- Interface ---

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error)
	ListTasksByRequest(ctx context.Context, requestID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*model.Task, error)
}

type taskService struct {
	repo repository.TaskRepository
	hub  *events.Hub
}

func NewTaskService(repo repository.TaskRepository, hub *events.Hub) TaskService {
	return &taskService{repo: repo, hub: hub}
}

// --- Implementation ---

// CreateTask inserts a task under a request. Status always starts at
// Not Started; a missing request or assignee surfaces as NotFound via the
// store's foreign-key constraints.
func (s *taskService) CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	requestID, err := uuid.Parse(input.RequestID)
	if err != nil {
		return nil, apperr.Validationf("invalid request id %q", input.RequestID)
	}

	task := &model.Task{
		RequestID:   requestID,
		Title:       input.Title,
		Description: input.Description,
		Status:      model.TaskNotStarted,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}

	if input.AssigneeID != nil {
		assigneeID, parseErr := uuid.Parse(*input.AssigneeID)
		if parseErr != nil {
			return nil, apperr.Validationf("invalid assignee id %q", *input.AssigneeID)
		}
		task.AssigneeID = &assigneeID
	}

	if err := s.repo.Create(ctx, task); err != nil {
		zap.L().Error("task creation failed", zap.String("request_id", input.RequestID), zap.Error(err))
		return nil, apperr.FromStore(err, "task")
	}

	s.publish(events.ActionCreated, task)
	return task, nil
}

func (s *taskService) ListTasksByRequest(ctx context.Context, requestID string) ([]model.Task, error) {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return nil, apperr.Validationf("invalid request id %q", requestID)
	}

	tasks, err := s.repo.ListByRequest(ctx, id)
	if err != nil {
		zap.L().Error("task list by request failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, apperr.FromStore(err, "tasks")
	}
	return tasks, nil
}

// UpdateTask applies only the provided fields; omitted fields stay untouched
// and explicit nulls clear the nullable ones. updatedAt always refreshes.
func (s *taskService) UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*model.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Validationf("invalid task id %q", id)
	}

	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("task %s", id)
		}
		zap.L().Error("task fetch failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "task")
	}

	if input.Title.Set {
		if !input.Title.Valid {
			return nil, apperr.Validationf("title cannot be null")
		}
		task.Title = input.Title.Value
	}
	if input.Description.Set {
		if !input.Description.Valid {
			return nil, apperr.Validationf("description cannot be null")
		}
		task.Description = input.Description.Value
	}
	if input.Status.Set {
		if !input.Status.Valid || !model.ValidTaskStatus(input.Status.Value) {
			return nil, apperr.Validationf("invalid task status %q", input.Status.Value)
		}
		task.Status = input.Status.Value
	}
	if input.Priority.Set {
		if !input.Priority.Valid || !model.ValidTaskPriority(input.Priority.Value) {
			return nil, apperr.Validationf("invalid task priority %q", input.Priority.Value)
		}
		task.Priority = input.Priority.Value
	}
	if input.AssigneeID.Set {
		if input.AssigneeID.Valid {
			assigneeID, parseErr := uuid.Parse(input.AssigneeID.Value)
			if parseErr != nil {
				return nil, apperr.Validationf("invalid assignee id %q", input.AssigneeID.Value)
			}
			task.AssigneeID = &assigneeID
		} else {
			task.AssigneeID = nil
		}
	}
	if input.DueDate.Set {
		if input.DueDate.Valid {
			due := input.DueDate.Value
			task.DueDate = &due
		} else {
			task.DueDate = nil
		}
	}

	if err := s.repo.Update(ctx, task); err != nil {
		zap.L().Error("task update failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.FromStore(err, "task")
	}

	s.publish(events.ActionUpdated, task)
	return task, nil
}

func (s *taskService) publish(action string, task *model.Task) {
	if s.hub != nil {
		s.hub.Publish(action, "task", task)
	}
}
