package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lynxmind/task-portal/internal/constants"
)

// TaskID parses the :id path parameter and stores it in the context. An id
// that is not a positive integer is left unset; it can match no task, and
// the handler decides how to answer.
func TaskID() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err == nil && taskID != 0 {
			c.Set(constants.ContextKeyTaskID, taskID)
		}
		c.Next()
	}
}

// GetTaskID retrieves the task ID set by TaskID
func GetTaskID(c *gin.Context) (uint64, bool) {
	taskID, exists := c.Get(constants.ContextKeyTaskID)
	if !exists {
		return 0, false
	}

	v, ok := taskID.(uint64)
	return v, ok
}
