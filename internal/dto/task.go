package dto

import (
	"github.com/lynxmind/task-portal/internal/models"
)

// TaskDTO is a task in wire shape: description travels as "desc" and
// due_date as "dueDate".
type TaskDTO struct {
	ID       uint64              `json:"id"`
	Title    string              `json:"title"`
	Desc     string              `json:"desc"`
	Status   models.TaskStatus   `json:"status"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *string             `json:"dueDate"`
}

// CreateTaskRequest is the POST /tasks body. Desc and DueDate are optional.
type CreateTaskRequest struct {
	Title    string              `json:"title"`
	Desc     *string             `json:"desc,omitempty"`
	Status   models.TaskStatus   `json:"status"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *string             `json:"dueDate,omitempty"`
}

// UpdateStatusRequest is the PUT /tasks/:id body
type UpdateStatusRequest struct {
	Status models.TaskStatus `json:"status"`
}

// SuccessResponse is returned by update and delete
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Conversion functions

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:       task.ID,
		Title:    task.Title,
		Desc:     task.Description,
		Status:   task.Status,
		Priority: task.Priority,
		DueDate:  task.DueDate,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil so the list
// encodes as [] rather than null.
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
