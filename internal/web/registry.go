package web

import (
	"sync"
	"time"

	"github.com/lynxmind/task-portal/internal/ui"
)

type registryEntry struct {
	store    *ui.Store
	lastSeen time.Time
}

// registry maps a browser session id to its ui.Store. Entries idle for
// longer than maxIdle are dropped.
type registry struct {
	mu       sync.Mutex
	entries  map[string]*registryEntry
	newStore func() *ui.Store
	maxIdle  time.Duration
	now      func() time.Time
}

func newRegistry(newStore func() *ui.Store, maxIdle time.Duration) *registry {
	return &registry{
		entries:  make(map[string]*registryEntry),
		newStore: newStore,
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

// get returns the store for id, creating one if needed. created reports
// whether the store is new and still has to be mounted.
func (r *registry) get(id string) (store *ui.Store, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.prune(now)

	if e, ok := r.entries[id]; ok {
		e.lastSeen = now
		return e.store, false
	}
	e := &registryEntry{store: r.newStore(), lastSeen: now}
	r.entries[id] = e
	return e.store, true
}

func (r *registry) prune(now time.Time) {
	if r.maxIdle <= 0 {
		return
	}
	for id, e := range r.entries {
		if now.Sub(e.lastSeen) > r.maxIdle {
			delete(r.entries, id)
		}
	}
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
