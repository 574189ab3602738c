package rules

import (
	"sync"
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

// Store holds the rule snapshots the pipeline evaluates against. Rules
// themselves are treated as immutable; the bookkeeping fields
// (lastEvaluation, lastTriggered, triggerCount) are updated here under
// the store's lock.
type Store struct {
	mu    sync.Mutex
	rules map[uuid.UUID]*models.AlertRule
}

func NewStore(rules ...*models.AlertRule) *Store {
	s := &Store{rules: make(map[uuid.UUID]*models.AlertRule)}
	for _, r := range rules {
		s.rules[r.ID] = r
	}
	return s
}

func (s *Store) Add(r *models.AlertRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[r.ID] = r
}

func (s *Store) Get(id uuid.UUID) (*models.AlertRule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rules[id]
	return r, ok
}

// Matching returns the rules that evaluate the given metric.
func (s *Store) Matching(metric string) []*models.AlertRule {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*models.AlertRule
	for _, r := range s.rules {
		if r.Metric == metric {
			matched = append(matched, r)
		}
	}
	return matched
}

func (s *Store) All() []*models.AlertRule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.AlertRule, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r)
	}
	return out
}

func (s *Store) MarkEvaluated(r *models.AlertRule, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.LastEvaluation = t
}

func (s *Store) MarkTriggered(r *models.AlertRule, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.LastTriggered = t
	r.TriggerCount++
}

func (s *Store) ShouldEvaluate(r *models.AlertRule, t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.ShouldEvaluate(t)
}

func (s *Store) InSuppressionWindow(r *models.AlertRule, t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return r.InSuppressionWindow(t)
}
