package constants

// Context keys
const (
	ContextKeyTaskID    = "task_id"
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

// UI session
const (
	SessionCookieName     = "task_portal_session"
	SessionKeyClient      = "client_id"
	SessionKeyAfterAction = "after_action"
	SessionMaxAge         = 86400 * 7
)

// Task form defaults
const (
	DefaultTaskStatus   = "pending"
	DefaultTaskPriority = "medium"
	DueDateLayout       = "2006-01-02"
)
