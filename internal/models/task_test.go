package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Valid(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	for _, s := range []TaskStatus{"", "done", "Pending", "pendente"} {
		assert.False(t, s.Valid(), s)
	}
}

func TestTaskPriority_Valid(t *testing.T) {
	for _, p := range []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh} {
		assert.True(t, p.Valid(), p)
	}
	for _, p := range []TaskPriority{"", "urgent", "media"} {
		assert.False(t, p.Valid(), p)
	}
}
