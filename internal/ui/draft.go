package ui

import (
	"errors"
	"strings"

	"github.com/lynxmind/task-portal/internal/constants"
	"github.com/lynxmind/task-portal/internal/dto"
	"github.com/lynxmind/task-portal/internal/models"
)

var ErrTitleRequired = errors.New("title is required")

// Draft is the new-task form as the user typed it.
type Draft struct {
	Title    string
	Desc     string
	Status   models.TaskStatus
	Priority models.TaskPriority
	DueDate  string
}

// NewDraft returns an empty form with the default status and priority.
func NewDraft() Draft {
	return Draft{
		Status:   models.TaskStatus(constants.DefaultTaskStatus),
		Priority: models.TaskPriority(constants.DefaultTaskPriority),
	}
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// Payload builds the create request. Title and description are trimmed and
// an empty due date is sent as null.
func (d Draft) Payload() dto.CreateTaskRequest {
	desc := strings.TrimSpace(d.Desc)
	req := dto.CreateTaskRequest{
		Title:    strings.TrimSpace(d.Title),
		Desc:     &desc,
		Status:   d.Status,
		Priority: d.Priority,
	}
	if due := strings.TrimSpace(d.DueDate); due != "" {
		req.DueDate = &due
	}
	return req
}
