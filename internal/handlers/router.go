package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lynxmind/task-portal/internal/middleware"
)

// NewRouter wires the REST API: CORS, request logging, health check and the
// four task routes.
func NewRouter(taskHandler *TaskHandler, corsOrigin string, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(corsOrigin))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task API is running",
		})
	})

	RegisterRoutes(r, taskHandler)
	return r
}

func RegisterRoutes(r gin.IRouter, taskHandler *TaskHandler) {
	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PUT("/:id", middleware.TaskID(), taskHandler.UpdateTaskStatus)
		tasks.DELETE("/:id", middleware.TaskID(), taskHandler.DeleteTask)
	}
}
