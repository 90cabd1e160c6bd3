package web

import (
	"html/template"

	"github.com/lynxmind/task-portal/internal/models"
	"github.com/lynxmind/task-portal/internal/ui"
)

var statusOrder = []models.TaskStatus{
	models.TaskStatusPending,
	models.TaskStatusInProgress,
	models.TaskStatusCompleted,
}

var priorityOrder = []models.TaskPriority{
	models.TaskPriorityLow,
	models.TaskPriorityMedium,
	models.TaskPriorityHigh,
}

var statusLabels = map[models.TaskStatus]string{
	models.TaskStatusPending:    "Pending",
	models.TaskStatusInProgress: "In progress",
	models.TaskStatusCompleted:  "Completed",
}

var priorityLabels = map[models.TaskPriority]string{
	models.TaskPriorityLow:    "Low",
	models.TaskPriorityMedium: "Medium",
	models.TaskPriorityHigh:   "High",
}

var filterLabels = map[ui.Filter]string{
	ui.FilterAll:        "All",
	ui.FilterPending:    "Pending",
	ui.FilterInProgress: "In progress",
	ui.FilterCompleted:  "Completed",
}

// Unknown values fall back to the raw string.
var templateFuncs = template.FuncMap{
	"statusLabel": func(s models.TaskStatus) string {
		if l, ok := statusLabels[s]; ok {
			return l
		}
		return string(s)
	},
	"priorityLabel": func(p models.TaskPriority) string {
		if l, ok := priorityLabels[p]; ok {
			return l
		}
		return string(p)
	},
	"filterLabel": func(f ui.Filter) string {
		if l, ok := filterLabels[f]; ok {
			return l
		}
		return string(f)
	},
	"toggleLabel": func(s models.TaskStatus) string {
		if ui.NextStatus(s) == models.TaskStatusPending {
			return "Mark as pending"
		}
		return "Mark as completed"
	},
}
