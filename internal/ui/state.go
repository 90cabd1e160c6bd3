// Package ui holds the client-side task state and the actions that change it.
package ui

import (
	"github.com/lynxmind/task-portal/internal/dto"
	"github.com/lynxmind/task-portal/internal/models"
)

// Filter selects which tasks are shown. It never touches the server.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = Filter(models.TaskStatusPending)
	FilterInProgress Filter = Filter(models.TaskStatusInProgress)
	FilterCompleted  Filter = Filter(models.TaskStatusCompleted)
)

// Filters lists the filter options in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterInProgress, FilterCompleted}

// ParseFilter maps a form value to a Filter. Unknown values are rejected.
func ParseFilter(s string) (Filter, bool) {
	for _, f := range Filters {
		if string(f) == s {
			return f, true
		}
	}
	return FilterAll, false
}

// State is an immutable snapshot. Transitions return a new State and leave
// the receiver untouched.
type State struct {
	Tasks   []dto.TaskDTO
	Filter  Filter
	Loading bool
}

// InitialState is what the UI shows before the first fetch completes.
func InitialState() State {
	return State{
		Tasks:   []dto.TaskDTO{},
		Filter:  FilterAll,
		Loading: true,
	}
}

func (s State) WithTasks(tasks []dto.TaskDTO) State {
	s.Tasks = append([]dto.TaskDTO{}, tasks...)
	return s
}

func (s State) WithLoading(loading bool) State {
	s.Loading = loading
	return s
}

func (s State) Appended(task dto.TaskDTO) State {
	tasks := make([]dto.TaskDTO, 0, len(s.Tasks)+1)
	tasks = append(tasks, s.Tasks...)
	s.Tasks = append(tasks, task)
	return s
}

// WithStatus changes the status of the task with the given id. Other tasks
// and fields are kept as they are.
func (s State) WithStatus(id uint64, status models.TaskStatus) State {
	tasks := make([]dto.TaskDTO, len(s.Tasks))
	for i, t := range s.Tasks {
		if t.ID == id {
			t.Status = status
		}
		tasks[i] = t
	}
	s.Tasks = tasks
	return s
}

func (s State) Without(id uint64) State {
	tasks := make([]dto.TaskDTO, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks
	return s
}

func (s State) WithFilter(f Filter) State {
	s.Filter = f
	return s
}

// Find returns the task with the given id.
func (s State) Find(id uint64) (dto.TaskDTO, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return dto.TaskDTO{}, false
}

// Visible returns the tasks matching the filter, in list order.
func (s State) Visible() []dto.TaskDTO {
	if s.Filter == FilterAll || s.Filter == "" {
		return append([]dto.TaskDTO{}, s.Tasks...)
	}
	visible := make([]dto.TaskDTO, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if Filter(t.Status) == s.Filter {
			visible = append(visible, t)
		}
	}
	return visible
}

// NextStatus is the toggle rule: completed goes back to pending, anything
// else becomes completed. in_progress is only reachable at creation.
func NextStatus(current models.TaskStatus) models.TaskStatus {
	if current == models.TaskStatusCompleted {
		return models.TaskStatusPending
	}
	return models.TaskStatusCompleted
}
