package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lynxmind/task-portal/internal/dto"
	apierrors "github.com/lynxmind/task-portal/internal/errors"
	"github.com/lynxmind/task-portal/internal/middleware"
	"github.com/lynxmind/task-portal/internal/services"
)

// Fixed messages returned to clients. Details go to the log only.
const (
	msgFetchFailed    = "Failed to fetch tasks"
	msgCreateFailed   = "Failed to create task"
	msgUpdateFailed   = "Failed to update task"
	msgDeleteFailed   = "Failed to delete task"
	msgMissingFields  = "Missing required fields"
	msgStatusRequired = "Status is required"
	msgInvalidBody    = "Invalid request body"
	msgTaskNotFound   = "Task not found"
)

type TaskHandler struct {
	service *services.TaskService
	log     zerolog.Logger

	// strictNotFound answers 404 instead of {success:true} when an update
	// or delete matches no task.
	strictNotFound bool
}

func NewTaskHandler(service *services.TaskService, log zerolog.Logger, strictNotFound bool) *TaskHandler {
	return &TaskHandler{
		service:        service,
		log:            log,
		strictNotFound: strictNotFound,
	}
}

// ListTasks returns all tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	log := middleware.RequestLog(c, h.log)

	tasks, err := h.service.ListTasks(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("[task][list] failed")
		apierrors.InternalError(c, msgFetchFailed)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task and echoes it with its generated id
func (h *TaskHandler) CreateTask(c *gin.Context) {
	log := middleware.RequestLog(c, h.log)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("[task][create] invalid body")
		apierrors.BadRequest(c, apierrors.ErrCodeInvalidInput, msgInvalidBody)
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Desc,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrStatusRequired),
			errors.Is(err, services.ErrPriorityRequired):
			log.Debug().Err(err).Msg("[task][create] missing field")
			apierrors.BadRequest(c, apierrors.ErrCodeMissingField, msgMissingFields)
		case errors.As(err, &validationErr):
			log.Debug().Err(err).Msg("[task][create] invalid field")
			apierrors.BadRequest(c, apierrors.ErrCodeInvalidFormat, validationErr.Error())
		default:
			log.Error().Err(err).Msg("[task][create] failed")
			apierrors.InternalError(c, msgCreateFailed)
		}
		return
	}

	log.Info().Uint64("task_id", task.ID).Msg("[task][create] ok")
	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTaskStatus replaces the status of a task; no other field can change
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	log := middleware.RequestLog(c, h.log)

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("[task][update] invalid body")
		apierrors.BadRequest(c, apierrors.ErrCodeInvalidInput, msgInvalidBody)
		return
	}

	var err error
	taskID, ok := middleware.GetTaskID(c)
	if ok {
		err = h.service.UpdateStatus(c.Request.Context(), taskID, req.Status)
	} else if err = services.ValidateStatus(req.Status); err == nil {
		err = services.ErrTaskNotFound
	}
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrStatusRequired):
			apierrors.BadRequest(c, apierrors.ErrCodeMissingField, msgStatusRequired)
			return
		case errors.As(err, &validationErr):
			apierrors.BadRequest(c, apierrors.ErrCodeInvalidFormat, validationErr.Error())
			return
		case errors.Is(err, services.ErrTaskNotFound):
			if h.respondNotFound(c, log, "update") {
				return
			}
		default:
			log.Error().Err(err).Uint64("task_id", taskID).Msg("[task][update] failed")
			apierrors.InternalError(c, msgUpdateFailed)
			return
		}
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeleteTask permanently removes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	log := middleware.RequestLog(c, h.log)

	err := services.ErrTaskNotFound
	taskID, ok := middleware.GetTaskID(c)
	if ok {
		err = h.service.DeleteTask(c.Request.Context(), taskID)
	}
	if err != nil {
		if !errors.Is(err, services.ErrTaskNotFound) {
			log.Error().Err(err).Uint64("task_id", taskID).Msg("[task][delete] failed")
			apierrors.InternalError(c, msgDeleteFailed)
			return
		}
		if h.respondNotFound(c, log, "delete") {
			return
		}
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// respondNotFound writes a 404 in strict mode and reports whether it did.
// Otherwise the miss is only logged and the caller answers success.
func (h *TaskHandler) respondNotFound(c *gin.Context, log zerolog.Logger, op string) bool {
	if h.strictNotFound {
		apierrors.NotFound(c, msgTaskNotFound)
		return true
	}
	log.Info().Str("task_id", c.Param("id")).Str("op", op).Msg("[task] no task matched, answering success")
	return false
}
