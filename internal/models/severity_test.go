package models

import (
	"testing"
	"time"
)

func TestSeverityOrdering(t *testing.T) {
	if !SeverityCritical.HigherThan(SeverityWarning) {
		t.Error("Expected critical > warning")
	}
	if SeverityInfo.HigherThan(SeverityLow) {
		t.Error("Expected info < low")
	}
	if SeverityHigh.HigherThan(SeverityHigh) {
		t.Error("A severity should not be higher than itself")
	}
}

func TestSeverityEscalateClamps(t *testing.T) {
	if got := SeverityWarning.Escalate(); got != SeverityHigh {
		t.Errorf("Expected warning to escalate to high, got %s", got)
	}
	if got := SeverityEmergency.Escalate(); got != SeverityEmergency {
		t.Errorf("Expected emergency to stay at emergency, got %s", got)
	}
	if got := SeverityInfo.Deescalate(); got != SeverityInfo {
		t.Errorf("Expected info to stay at info, got %s", got)
	}
}

func TestEscalationTimeouts(t *testing.T) {
	cases := []struct {
		severity Severity
		want     time.Duration
	}{
		{SeverityEmergency, 5 * time.Minute},
		{SeverityCritical, 15 * time.Minute},
		{SeverityHigh, 30 * time.Minute},
		{SeverityWarning, time.Hour},
		{SeverityLow, 4 * time.Hour},
		{SeverityInfo, 24 * time.Hour},
	}

	for _, tc := range cases {
		if got := tc.severity.EscalationTimeout(); got != tc.want {
			t.Errorf("Expected %v timeout for %s, got %v", tc.want, tc.severity, got)
		}
	}
}

func TestNotificationThresholds(t *testing.T) {
	if SeverityLow.ShouldNotify() {
		t.Error("Low severity should not notify")
	}
	if !SeverityWarning.ShouldNotify() {
		t.Error("Warning severity should notify")
	}
	if SeverityWarning.ShouldNotifyResolution() {
		t.Error("Warning resolution should stay quiet")
	}
	if !SeverityHigh.ShouldNotifyResolution() {
		t.Error("High resolution should notify")
	}
}

func TestMaxSeverity(t *testing.T) {
	if got := MaxSeverity(SeverityLow, SeverityCritical); got != SeverityCritical {
		t.Errorf("Expected critical, got %s", got)
	}
	if got := MaxSeverity(SeverityHigh, SeverityHigh); got != SeverityHigh {
		t.Errorf("Expected high, got %s", got)
	}
}
