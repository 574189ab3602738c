package repository

import (
	"sync"
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

// MemoryAlertRepository keeps alerts in a map. Used in tests and when
// running without a database.
type MemoryAlertRepository struct {
	mu     sync.RWMutex
	alerts map[uuid.UUID]*models.Alert
}

func NewMemoryAlertRepository() *MemoryAlertRepository {
	return &MemoryAlertRepository{alerts: make(map[uuid.UUID]*models.Alert)}
}

func (r *MemoryAlertRepository) Save(alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[alert.ID] = alert.Clone()
	return nil
}

func (r *MemoryAlertRepository) FindByID(id uuid.UUID) (*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.alerts[id]; ok {
		return a.Clone(), nil
	}
	return nil, nil
}

func (r *MemoryAlertRepository) FindActiveAlertsInWindow(since time.Time, statuses []models.Status) ([]*models.Alert, error) {
	wanted := make(map[models.Status]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Alert
	for _, a := range r.alerts {
		if wanted[a.Status] && !a.StartsAt.Before(since) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (r *MemoryAlertRepository) FindExpiredPending(before time.Time) ([]*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Alert
	for _, a := range r.alerts {
		if a.Status == models.StatusPending && a.StartsAt.Before(before) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}
