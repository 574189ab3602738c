package models

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	ID            uuid.UUID `json:"id"`
	Fingerprint   string    `json:"fingerprint"`
	CorrelationID string    `json:"correlation_id,omitempty"`

	RuleID   uuid.UUID `json:"rule_id"`
	RuleName string    `json:"rule_name"`
	Resource string    `json:"resource"`
	Metric   string    `json:"metric"`

	Severity Severity `json:"severity"`
	Status   Status   `json:"status"`

	Summary     string            `json:"summary"`
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`

	StartsAt        time.Time  `json:"starts_at"`
	LastUpdated     time.Time  `json:"last_updated"`
	AcknowledgedAt  *time.Time `json:"acknowledged_at,omitempty"`
	AcknowledgedBy  string     `json:"acknowledged_by,omitempty"`
	AckNote         string     `json:"ack_note,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolutionNote  string     `json:"resolution_note,omitempty"`
	SuppressedUntil *time.Time `json:"suppressed_until,omitempty"`
	SuppressReason  string     `json:"suppress_reason,omitempty"`

	EscalationLevel int  `json:"escalation_level"`
	EscalationCount int  `json:"escalation_count"`
	DuplicateCount  int  `json:"duplicate_count"`
	AutoResolved    bool `json:"auto_resolved"`
}

// AddLabel sets a label, last write wins.
func (a *Alert) AddLabel(key, value string) {
	if a.Labels == nil {
		a.Labels = make(map[string]string)
	}
	a.Labels[key] = value
}

// AddAnnotation sets an annotation, last write wins.
func (a *Alert) AddAnnotation(key, value string) {
	if a.Annotations == nil {
		a.Annotations = make(map[string]string)
	}
	a.Annotations[key] = value
}

// Suppressed reports whether the alert is still inside its suppression
// window. A suppressed status with an elapsed deadline no longer counts.
func (a *Alert) Suppressed(now time.Time) bool {
	if a.Status != StatusSuppressed {
		return false
	}
	if a.SuppressedUntil == nil {
		return true // indefinite
	}
	return now.Before(*a.SuppressedUntil)
}

// Clone returns a copy safe to hand to callers outside the engine's
// per-alert locking.
func (a *Alert) Clone() *Alert {
	c := *a
	c.Labels = make(map[string]string, len(a.Labels))
	for k, v := range a.Labels {
		c.Labels[k] = v
	}
	c.Annotations = make(map[string]string, len(a.Annotations))
	for k, v := range a.Annotations {
		c.Annotations[k] = v
	}
	return &c
}

// Request/Response DTOs for the lifecycle API
type AcknowledgeRequest struct {
	Actor string `json:"actor" binding:"required"`
	Note  string `json:"note,omitempty"`
}

type ResolveRequest struct {
	Actor             string `json:"actor" binding:"required"`
	Note              string `json:"note,omitempty"`
	ResolveCorrelated bool   `json:"resolve_correlated,omitempty"`
}

type EscalateRequest struct {
	Actor        string `json:"actor" binding:"required"`
	BumpSeverity bool   `json:"bump_severity,omitempty"`
}

type SuppressRequest struct {
	Actor           string `json:"actor" binding:"required"`
	Reason          string `json:"reason,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

type CloseRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type AlertListResponse struct {
	Alerts []*Alert `json:"alerts"`
	Total  int      `json:"total"`
}
