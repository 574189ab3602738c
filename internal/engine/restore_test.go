package engine

import (
	"errors"
	"testing"
	"time"

	"alertmon/internal/config"
	"alertmon/internal/models"
	"alertmon/internal/repository"
	"alertmon/internal/rules"

	"github.com/google/uuid"
)

func storedAlert(rule *models.AlertRule, resource string, status models.Status) *models.Alert {
	now := time.Now().UTC()
	return &models.Alert{
		ID:          uuid.New(),
		Fingerprint: Fingerprint(rule.ID, resource, rule.Metric),
		RuleID:      rule.ID,
		RuleName:    rule.Name,
		Resource:    resource,
		Metric:      rule.Metric,
		Severity:    rule.Severity,
		Status:      status,
		StartsAt:    now.Add(-time.Minute),
		LastUpdated: now,
	}
}

func TestRestoreRebuildsIndex(t *testing.T) {
	rule := newTestRule("High CPU usage", "cpu_usage_percent", models.SeverityHigh)
	repo := repository.NewMemoryAlertRepository()

	firing := storedAlert(rule, "web-01", models.StatusFiring)
	pending := storedAlert(rule, "web-02", models.StatusPending)
	resolved := storedAlert(rule, "web-03", models.StatusResolved)
	for _, a := range []*models.Alert{firing, pending, resolved} {
		if err := repo.Save(a); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	eng := New(Options{}, repo, rules.NewStore(rule), nil, nil, nil)
	if err := eng.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if got := len(eng.ActiveAlerts()); got != 2 {
		t.Fatalf("Expected 2 restored alerts, got %d", got)
	}
	if _, err := eng.GetAlert(firing.ID); err != nil {
		t.Errorf("Firing alert not restored: %v", err)
	}

	// The restored pending alert gets its firing timer re-armed.
	if eng.scheduler.Pending() != 1 {
		t.Errorf("Expected 1 re-armed timer, got %d", eng.scheduler.Pending())
	}

	// Dedup works against restored state.
	eng.Process(triggered(rule, "web-01", 95))
	if got := eng.Statistics().DuplicateAlerts; got != 1 {
		t.Errorf("Expected trigger on restored alert to dedup, duplicates=%d", got)
	}
}

// Two boots from the same configuration must agree on rule ids, or the
// second boot cannot re-arm restored pending timers and a fresh trigger
// for the same condition opens a second alert.
func TestRestartWithPinnedRuleIDsKeepsDedup(t *testing.T) {
	cfg := config.Config{Rules: []config.RuleConfig{{
		ID:          "7f0c2a4e-9f1d-4b6a-8c3e-5d2a1b4c6e8f",
		Name:        "High CPU usage",
		Category:    "compute",
		Metric:      "cpu_usage_percent",
		Severity:    "high",
		Operator:    "gt",
		Threshold:   90,
		ForDuration: time.Hour,
	}}}
	repo := repository.NewMemoryAlertRepository()

	boot1, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("Failed to build rules: %v", err)
	}
	eng1 := New(Options{}, repo, rules.NewStore(boot1...), nil, nil, nil)
	eng1.Process(triggered(boot1[0], "web-01", 95))
	eng1.Stop()

	boot2, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("Failed to build rules: %v", err)
	}
	eng2 := New(Options{}, repo, rules.NewStore(boot2...), nil, nil, nil)
	if err := eng2.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if got := eng2.scheduler.Pending(); got != 1 {
		t.Errorf("Expected the restored pending alert's timer re-armed, got %d", got)
	}

	eng2.Process(triggered(boot2[0], "web-01", 96))
	if got := len(eng2.ActiveAlerts()); got != 1 {
		t.Fatalf("Expected the post-restart trigger to dedup, got %d active", got)
	}
	if got := eng2.Statistics().DuplicateAlerts; got != 1 {
		t.Errorf("Expected 1 duplicate, got %d", got)
	}
}

func TestRestoreClearsStaleCorrelationIDInStore(t *testing.T) {
	rule := newTestRule("High CPU usage", "cpu_usage_percent", models.SeverityHigh)
	repo := repository.NewMemoryAlertRepository()

	a := storedAlert(rule, "web-01", models.StatusFiring)
	a.CorrelationID = uuid.New().String()
	if err := repo.Save(a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	eng := New(Options{}, repo, rules.NewStore(rule), nil, nil, nil)
	if err := eng.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	stored, err := repo.FindByID(a.ID)
	if err != nil || stored == nil {
		t.Fatalf("Expected alert in store, got %v, %v", stored, err)
	}
	if stored.CorrelationID != "" {
		t.Errorf("Stale correlation id still persisted: %q", stored.CorrelationID)
	}
}

func TestRestoreDetectsFingerprintCollision(t *testing.T) {
	rule := newTestRule("High CPU usage", "cpu_usage_percent", models.SeverityHigh)
	repo := repository.NewMemoryAlertRepository()

	a := storedAlert(rule, "web-01", models.StatusFiring)
	b := storedAlert(rule, "web-01", models.StatusPending)
	repo.Save(a)
	repo.Save(b)

	eng := New(Options{}, repo, rules.NewStore(rule), nil, nil, nil)
	err := eng.Restore()

	var violation *InvariantViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("Expected InvariantViolationError, got %v", err)
	}
	if violation.Fingerprint != a.Fingerprint {
		t.Errorf("Violation names fingerprint %q, want %q", violation.Fingerprint, a.Fingerprint)
	}
	if len(violation.AlertIDs) != 2 {
		t.Errorf("Expected both alert ids named, got %v", violation.AlertIDs)
	}
}
