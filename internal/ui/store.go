package ui

import (
	"context"
	"sync"

	"github.com/lynxmind/task-portal/internal/dto"
	"github.com/lynxmind/task-portal/internal/models"
)

// Messages shown to the user when an action fails.
const (
	MsgTitleRequired = "Title is required."
	MsgLoadFailed    = "Could not load tasks from the server."
	MsgCreateFailed  = "Could not create the task."
	MsgUpdateFailed  = "Could not update the task."
	MsgDeleteFailed  = "Could not delete the task."
	MsgConfirmDelete = "Are you sure you want to delete this task?"
)

// API is the subset of the task API the store needs. *client.Client
// satisfies it.
type API interface {
	ListTasks(ctx context.Context) ([]dto.TaskDTO, error)
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskDTO, error)
	UpdateStatus(ctx context.Context, id uint64, status models.TaskStatus) error
	DeleteTask(ctx context.Context, id uint64) error
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Store owns the current State. Every action swaps in a new snapshot; a
// failed action leaves the snapshot unchanged and raises an alert.
type Store struct {
	api       API
	alerter   Alerter
	confirmer Confirmer

	// busy serialises actions so a list fetch cannot overwrite a change
	// made while it was in flight.
	busy sync.Mutex

	mu      sync.RWMutex
	state   State
	mounted bool
}

func NewStore(api API, alerter Alerter, confirmer Confirmer) *Store {
	return &Store{
		api:       api,
		alerter:   alerter,
		confirmer: confirmer,
		state:     InitialState(),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Mounted reports whether a Mount has succeeded.
func (s *Store) Mounted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mounted
}

func (s *Store) update(fn func(State) State) {
	s.mu.Lock()
	s.state = fn(s.state)
	s.mu.Unlock()
}

// Mount loads the task list. Loading is cleared whether or not the fetch
// succeeds.
func (s *Store) Mount(ctx context.Context) error {
	s.busy.Lock()
	defer s.busy.Unlock()

	tasks, err := s.api.ListTasks(ctx)
	if err != nil {
		s.update(func(st State) State { return st.WithLoading(false) })
		s.alerter.Alert(ctx, MsgLoadFailed)
		return err
	}
	s.mu.Lock()
	s.state = s.state.WithTasks(tasks).WithLoading(false)
	s.mounted = true
	s.mu.Unlock()
	return nil
}

// AddTask validates the draft, creates the task and appends the server's
// echo to the list.
func (s *Store) AddTask(ctx context.Context, d Draft) error {
	s.busy.Lock()
	defer s.busy.Unlock()

	if err := d.Validate(); err != nil {
		s.alerter.Alert(ctx, MsgTitleRequired)
		return err
	}
	created, err := s.api.CreateTask(ctx, d.Payload())
	if err != nil {
		s.alerter.Alert(ctx, MsgCreateFailed)
		return err
	}
	s.update(func(st State) State { return st.Appended(created) })
	return nil
}

// ToggleStatus flips a task between completed and pending. Unknown ids are
// ignored.
func (s *Store) ToggleStatus(ctx context.Context, id uint64) error {
	s.busy.Lock()
	defer s.busy.Unlock()

	task, ok := s.State().Find(id)
	if !ok {
		return nil
	}
	next := NextStatus(task.Status)
	if err := s.api.UpdateStatus(ctx, id, next); err != nil {
		s.alerter.Alert(ctx, MsgUpdateFailed)
		return err
	}
	s.update(func(st State) State { return st.WithStatus(id, next) })
	return nil
}

// DeleteTask removes a task after the user confirms. Declining does nothing.
func (s *Store) DeleteTask(ctx context.Context, id uint64) error {
	s.busy.Lock()
	defer s.busy.Unlock()

	if !s.confirmer.Confirm(ctx, MsgConfirmDelete) {
		return nil
	}
	if err := s.api.DeleteTask(ctx, id); err != nil {
		s.alerter.Alert(ctx, MsgDeleteFailed)
		return err
	}
	s.update(func(st State) State { return st.Without(id) })
	return nil
}

func (s *Store) SetFilter(f Filter) {
	s.update(func(st State) State { return st.WithFilter(f) })
}
