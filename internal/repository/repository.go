package repository

import (
	"context"
	"errors"

	"github.com/lynxmind/task-portal/internal/models"
)

// ErrNotFound is returned by single-row mutations that matched no row.
var ErrNotFound = errors.New("record not found")

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List returns every task in insertion order
	List(ctx context.Context) ([]models.Task, error)

	// Create inserts a task and fills in its generated ID
	Create(ctx context.Context, task *models.Task) error

	// UpdateStatus overwrites the status of one task
	UpdateStatus(ctx context.Context, id uint64, status models.TaskStatus) error

	// Delete hard deletes one task
	Delete(ctx context.Context, id uint64) error

	// Count returns the number of stored tasks
	Count(ctx context.Context) (int64, error)
}
