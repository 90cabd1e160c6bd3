// Package web serves the task UI as server-rendered HTML on top of ui.Store.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lynxmind/task-portal/internal/constants"
	"github.com/lynxmind/task-portal/internal/dto"
	"github.com/lynxmind/task-portal/internal/middleware"
	"github.com/lynxmind/task-portal/internal/models"
	"github.com/lynxmind/task-portal/internal/ui"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Options struct {
	SessionSecret string
	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
}

type Server struct {
	opts     Options
	log      zerolog.Logger
	registry *registry
}

func NewServer(api ui.API, opts Options, log zerolog.Logger) *Server {
	newStore := func() *ui.Store {
		return ui.NewStore(api, requestAlerter{}, requestConfirmer{})
	}
	return &Server{
		opts:     opts,
		log:      log,
		registry: newRegistry(newStore, time.Duration(constants.SessionMaxAge)*time.Second),
	}
}

// Router builds the gin engine for the UI.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(s.log))
	r.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(s.opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", s.index)
	r.POST("/tasks", s.createTask)
	r.POST("/tasks/:id/toggle", s.toggleTask)
	r.POST("/tasks/:id/delete", s.deleteTask)
	r.POST("/filter", s.setFilter)

	return r, nil
}

// request is the per-request view of a browser session.
type request struct {
	ctx     context.Context
	session sessions.Session
	store   *ui.Store
	fb      *feedback
	log     zerolog.Logger
}

// begin resolves the session's store. The store is mounted when reload is
// set or when it has never loaded successfully.
func (s *Server) begin(c *gin.Context, reload bool) *request {
	log := middleware.RequestLog(c, s.log)
	session := sessions.Default(c)

	clientID, _ := session.Get(constants.SessionKeyClient).(string)
	if _, err := uuid.Parse(clientID); err != nil {
		clientID = uuid.NewString()
		session.Set(constants.SessionKeyClient, clientID)
	}

	fb := &feedback{}
	req := &request{
		ctx:     withFeedback(c.Request.Context(), fb),
		session: session,
		fb:      fb,
		log:     log.With().Str("client_id", clientID).Logger(),
	}

	req.store, _ = s.registry.get(clientID)
	if reload || !req.store.Mounted() {
		if err := req.store.Mount(req.ctx); err != nil {
			req.log.Warn().Err(err).Msg("[ui][mount] failed")
		}
	}
	return req
}

// flushAlerts moves the request's alerts into session flashes.
func (r *request) flushAlerts() {
	for _, msg := range r.fb.alerts {
		r.session.AddFlash(msg)
	}
	r.fb.alerts = nil
}

func (r *request) redirect(c *gin.Context) {
	r.flushAlerts()
	r.session.Set(constants.SessionKeyAfterAction, true)
	if err := r.session.Save(); err != nil {
		r.log.Error().Err(err).Msg("[ui] session save failed")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// index renders the page. A page load refetches the list like a fresh mount;
// the redirect that follows an action keeps the local state instead.
func (s *Server) index(c *gin.Context) {
	session := sessions.Default(c)
	afterAction, _ := session.Get(constants.SessionKeyAfterAction).(bool)
	session.Delete(constants.SessionKeyAfterAction)

	req := s.begin(c, !afterAction)
	req.flushAlerts()

	var alerts []string
	for _, f := range req.session.Flashes() {
		if msg, ok := f.(string); ok {
			alerts = append(alerts, msg)
		}
	}
	if err := req.session.Save(); err != nil {
		req.log.Error().Err(err).Msg("[ui] session save failed")
	}

	st := req.store.State()
	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Tasks:         st.Visible(),
		Filter:        st.Filter,
		Loading:       st.Loading,
		Alerts:        alerts,
		Draft:         ui.NewDraft(),
		Filters:       ui.Filters,
		Statuses:      statusOrder,
		Priorities:    priorityOrder,
		ConfirmPrompt: ui.MsgConfirmDelete,
	})
}

func (s *Server) createTask(c *gin.Context) {
	req := s.begin(c, false)

	d := ui.NewDraft()
	d.Title = c.PostForm("title")
	d.Desc = c.PostForm("desc")
	d.DueDate = c.PostForm("dueDate")
	if v := c.PostForm("status"); v != "" {
		d.Status = models.TaskStatus(v)
	}
	if v := c.PostForm("priority"); v != "" {
		d.Priority = models.TaskPriority(v)
	}

	if err := req.store.AddTask(req.ctx, d); err != nil {
		req.log.Debug().Err(err).Msg("[ui][create] failed")
	}
	req.redirect(c)
}

func (s *Server) toggleTask(c *gin.Context) {
	req := s.begin(c, false)
	if id, ok := taskIDParam(c); ok {
		if err := req.store.ToggleStatus(req.ctx, id); err != nil {
			req.log.Debug().Err(err).Uint64("task_id", id).Msg("[ui][toggle] failed")
		}
	}
	req.redirect(c)
}

func (s *Server) deleteTask(c *gin.Context) {
	req := s.begin(c, false)
	req.fb.confirmed = c.PostForm("confirm") == "yes"
	if id, ok := taskIDParam(c); ok {
		if err := req.store.DeleteTask(req.ctx, id); err != nil {
			req.log.Debug().Err(err).Uint64("task_id", id).Msg("[ui][delete] failed")
		}
	}
	req.redirect(c)
}

func (s *Server) setFilter(c *gin.Context) {
	req := s.begin(c, false)
	if f, ok := ui.ParseFilter(c.PostForm("filter")); ok {
		req.store.SetFilter(f)
	}
	req.redirect(c)
}

func taskIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id != 0
}

type pageData struct {
	Tasks         []dto.TaskDTO
	Filter        ui.Filter
	Loading       bool
	Alerts        []string
	Draft         ui.Draft
	Filters       []ui.Filter
	Statuses      []models.TaskStatus
	Priorities    []models.TaskPriority
	ConfirmPrompt string
}
