package models

import "time"

// Severity levels ordered from least to most urgent.
type Severity string

const (
	SeverityInfo      Severity = "info"
	SeverityLow       Severity = "low"
	SeverityWarning   Severity = "warning"
	SeverityHigh      Severity = "high"
	SeverityCritical  Severity = "critical"
	SeverityEmergency Severity = "emergency"
)

var severityRank = map[Severity]int{
	SeverityInfo:      1,
	SeverityLow:       2,
	SeverityWarning:   3,
	SeverityHigh:      4,
	SeverityCritical:  5,
	SeverityEmergency: 6,
}

var severityOrder = []Severity{
	SeverityInfo,
	SeverityLow,
	SeverityWarning,
	SeverityHigh,
	SeverityCritical,
	SeverityEmergency,
}

func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

func (s Severity) Rank() int {
	return severityRank[s]
}

func (s Severity) HigherThan(other Severity) bool {
	return severityRank[s] > severityRank[other]
}

// Escalate returns the next higher severity, clamped at emergency.
func (s Severity) Escalate() Severity {
	idx := severityRank[s] // rank is 1-based, so idx points at the next level
	if idx >= len(severityOrder) {
		return SeverityEmergency
	}
	return severityOrder[idx]
}

// Deescalate returns the next lower severity, clamped at info.
func (s Severity) Deescalate() Severity {
	idx := severityRank[s] - 2
	if idx < 0 {
		return SeverityInfo
	}
	return severityOrder[idx]
}

// EscalationTimeout is how long an alert at this severity may sit in an
// attention-requiring state before the next escalation cycle fires.
func (s Severity) EscalationTimeout() time.Duration {
	switch s {
	case SeverityEmergency:
		return 5 * time.Minute
	case SeverityCritical:
		return 15 * time.Minute
	case SeverityHigh:
		return 30 * time.Minute
	case SeverityWarning:
		return time.Hour
	case SeverityLow:
		return 4 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// ShouldNotify reports whether alerts at this severity go out to
// notification channels at all.
func (s Severity) ShouldNotify() bool {
	return severityRank[s] >= severityRank[SeverityWarning]
}

// ShouldNotifyResolution limits resolution noise to the severities an
// operator actually waits on.
func (s Severity) ShouldNotifyResolution() bool {
	return severityRank[s] >= severityRank[SeverityHigh]
}

// MaxSeverity returns the higher of two severities.
func MaxSeverity(a, b Severity) Severity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}
