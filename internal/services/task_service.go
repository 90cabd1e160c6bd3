package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lynxmind/task-portal/internal/constants"
	"github.com/lynxmind/task-portal/internal/models"
	"github.com/lynxmind/task-portal/internal/repository"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrStatusRequired   = errors.New("status is required")
	ErrPriorityRequired = errors.New("priority is required")
	ErrInvalidStatus    = errors.New("status must be one of pending, in_progress, completed")
	ErrInvalidPriority  = errors.New("priority must be one of low, medium, high")
	ErrInvalidDueDate   = errors.New("due date must be an ISO date (YYYY-MM-DD)")
	ErrTaskNotFound     = errors.New("task not found")
)

// ValidationError reports a request the caller must fix. It is never retried.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// PersistenceError reports a storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("failed to %s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

func invalid(err error) error {
	return &ValidationError{Err: err}
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task. Nil Description and
// DueDate mean the client left them out.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *string
}

// ListTasks returns every task
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

// CountTasks returns how many tasks are stored
func (s *TaskService) CountTasks(ctx context.Context) (int64, error) {
	n, err := s.taskRepo.Count(ctx)
	if err != nil {
		return 0, &PersistenceError{Op: "count tasks", Err: err}
	}
	return n, nil
}

// CreateTask validates input, applies defaults and stores the task
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalid(ErrTitleRequired)
	}
	if input.Status == "" {
		return nil, invalid(ErrStatusRequired)
	}
	if input.Priority == "" {
		return nil, invalid(ErrPriorityRequired)
	}
	if !input.Status.Valid() {
		return nil, invalid(ErrInvalidStatus)
	}
	if !input.Priority.Valid() {
		return nil, invalid(ErrInvalidPriority)
	}

	dueDate, err := normalizeDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:    title,
		Status:   input.Status,
		Priority: input.Priority,
		DueDate:  dueDate,
	}
	if input.Description != nil {
		task.Description = *input.Description
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, &PersistenceError{Op: "create task", Err: err}
	}
	return task, nil
}

// UpdateStatus replaces the status of a task. Nothing else is writable.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID uint64, status models.TaskStatus) error {
	if err := ValidateStatus(status); err != nil {
		return err
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return &PersistenceError{Op: "update task", Err: err}
	}
	return nil
}

// ValidateStatus checks a requested status without touching the store.
func ValidateStatus(status models.TaskStatus) error {
	if status == "" {
		return invalid(ErrStatusRequired)
	}
	if !status.Valid() {
		return invalid(ErrInvalidStatus)
	}
	return nil
}

// DeleteTask removes a task permanently
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return &PersistenceError{Op: "delete task", Err: err}
	}
	return nil
}

// normalizeDueDate maps an absent or empty due date to nil and otherwise
// checks it is a date without changing the stored text.
func normalizeDueDate(dueDate *string) (*string, error) {
	if dueDate == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*dueDate)
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse(constants.DueDateLayout, value); err != nil {
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			return nil, invalid(ErrInvalidDueDate)
		}
	}
	return &value, nil
}
