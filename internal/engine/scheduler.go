package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler owns one cancellable timer per alert instead of a sleeping
// goroutine per alert. Scheduling again for the same id replaces the
// previous timer; cancelling twice, or cancelling an already-fired
// timer, is a no-op.
type Scheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[uuid.UUID]*time.Timer)}
}

func (s *Scheduler) Schedule(alertID uuid.UUID, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[alertID]; ok {
		old.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		if cur, ok := s.timers[alertID]; ok && cur == t {
			delete(s.timers, alertID)
		}
		s.mu.Unlock()
		fn()
	})
	s.timers[alertID] = t
}

func (s *Scheduler) Cancel(alertID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[alertID]; ok {
		t.Stop()
		delete(s.timers, alertID)
	}
}

func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
