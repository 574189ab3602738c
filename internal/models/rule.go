package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertRule is the evaluation contract for one rule. The engine treats it
// as an immutable snapshot except for the bookkeeping fields, which the
// rule store updates under its own lock.
type AlertRule struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Metric   string    `json:"metric"`
	Severity Severity  `json:"severity"`

	// Threshold condition: value <Operator> Threshold triggers.
	Operator  string  `json:"operator"`
	Threshold float64 `json:"threshold"`

	EvaluationInterval time.Duration `json:"evaluation_interval"`
	ForDuration        time.Duration `json:"for_duration"`

	SuppressionEnabled  bool          `json:"suppression_enabled"`
	SuppressionDuration time.Duration `json:"suppression_duration"`

	AutoResolveEnabled  bool          `json:"auto_resolve_enabled"`
	AutoResolveDuration time.Duration `json:"auto_resolve_duration"`

	CorrelationEnabled bool          `json:"correlation_enabled"`
	CorrelationWindow  time.Duration `json:"correlation_window"`

	NotificationChannels []string          `json:"notification_channels,omitempty"`
	Labels               map[string]string `json:"labels,omitempty"`
	Annotations          map[string]string `json:"annotations,omitempty"`

	// Bookkeeping, owned by the rule store.
	LastEvaluation time.Time `json:"last_evaluation"`
	LastTriggered  time.Time `json:"last_triggered"`
	TriggerCount   int64     `json:"trigger_count"`
}

// ShouldEvaluate gates evaluation to the configured interval.
func (r *AlertRule) ShouldEvaluate(now time.Time) bool {
	if r.LastEvaluation.IsZero() {
		return true
	}
	return now.Sub(r.LastEvaluation) >= r.EvaluationInterval
}

// InSuppressionWindow reports whether the rule triggered recently enough
// that new alerts for it are dropped outright.
func (r *AlertRule) InSuppressionWindow(now time.Time) bool {
	if !r.SuppressionEnabled || r.LastTriggered.IsZero() {
		return false
	}
	return now.Sub(r.LastTriggered) < r.SuppressionDuration
}
