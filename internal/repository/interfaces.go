package repository

import (
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

// AlertRepository defines operations for alert persistence. The persisted
// record is the durable source of truth; the engine's in-memory index is
// a cache reconstructible from here after a restart.
type AlertRepository interface {
	Save(alert *models.Alert) error
	// FindByID returns (nil, nil) when no alert has that id.
	FindByID(id uuid.UUID) (*models.Alert, error)
	FindActiveAlertsInWindow(since time.Time, statuses []models.Status) ([]*models.Alert, error)
	FindExpiredPending(before time.Time) ([]*models.Alert, error)
}

// HealthChecker defines health check operations
type HealthChecker interface {
	CheckHealth() error
}
