package form

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type session struct {
	controller *Controller
	touched    time.Time
}

// Registry keeps one Controller per open form so that repeated requests against the same form
// share its submitting guard.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	newFn    func(id string) *Controller
	now      func() time.Time
}

// NewRegistry uses newController to build the controller of every opened form.
func NewRegistry(newController func(id string) *Controller) *Registry {
	return &Registry{
		sessions: map[string]*session{},
		newFn:    newController,
		now:      time.Now,
	}
}

func (r *Registry) Open() *Controller {
	id := uuid.NewString()
	controller := r.newFn(id)

	r.mu.Lock()
	r.sessions[id] = &session{controller: controller, touched: r.now()}
	r.mu.Unlock()

	return controller
}

func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}

	s.touched = r.now()

	return s.controller, true
}

// Close forgets the form. It reports whether the form was open.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)

	return ok
}

// Expire closes idle forms that are not submitting and returns how many were closed.
func (r *Registry) Expire(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline := r.now().Add(-idle)
	closed := 0

	for id, s := range r.sessions {
		if s.touched.Before(deadline) && !s.controller.State().Submitting {
			delete(r.sessions, id)
			closed++
		}
	}

	return closed
}

// Run expires forms idle for longer than idle every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if closed := r.Expire(idle); closed > 0 {
				log.Info().Int("closed", closed).Msg("expired idle guest forms")
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
