package engine

import (
	"errors"
	"fmt"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lifecycle operation targets an alert id
// that neither the index nor the repository knows about.
var ErrNotFound = errors.New("alert not found")

// StateConflictError means the alert exists but the requested transition
// is illegal from its current status. The alert is left untouched.
type StateConflictError struct {
	AlertID uuid.UUID
	Status  models.Status
	Op      string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s alert %s in status %q", e.Op, e.AlertID, e.Status)
}

// InvariantViolationError signals two active alerts sharing one
// fingerprint. This is a concurrency bug, not a recoverable condition,
// so it is surfaced loudly instead of silently repaired.
type InvariantViolationError struct {
	Fingerprint string
	AlertIDs    []uuid.UUID
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %d active alerts for fingerprint %q: %v",
		len(e.AlertIDs), e.Fingerprint, e.AlertIDs)
}
