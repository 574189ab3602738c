package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"alertmon/internal/config"
	"alertmon/internal/models"

	"github.com/google/uuid"
)

type fakeSender struct {
	sent []struct{ channel, text string }
	err  error
}

func (f *fakeSender) Send(channel, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, struct{ channel, text string }{channel, text})
	return nil
}

func slackCfg() config.SlackConfig {
	return config.SlackConfig{
		Enabled: true,
		Channels: map[string]string{
			"default":  "#alerts",
			"critical": "#alerts-critical",
		},
		CircuitBreaker: config.CircuitBreakerConfig{FailureThreshold: 2, TimeoutDuration: 60},
	}
}

func event(severity models.Severity, eventType models.EventType) models.AlertEvent {
	return models.AlertEvent{
		Alert: &models.Alert{
			ID:       uuid.New(),
			Resource: "web-01",
			Metric:   "cpu_usage_percent",
			Severity: severity,
			Summary:  "High CPU usage on web-01",
		},
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
}

func TestSeverityRouting(t *testing.T) {
	sender := &fakeSender{}
	cfg := slackCfg()
	n := NewNotifier(sender, NewCircuitBreaker(cfg.CircuitBreaker, nil), cfg)

	if err := n.Notify(event(models.SeverityCritical, models.EventCreated)); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if err := n.Notify(event(models.SeverityWarning, models.EventCreated)); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(sender.sent))
	}
	if sender.sent[0].channel != "#alerts-critical" {
		t.Errorf("Critical alert routed to %s", sender.sent[0].channel)
	}
	if sender.sent[1].channel != "#alerts" {
		t.Errorf("Warning alert routed to %s", sender.sent[1].channel)
	}
}

func TestSeverityFiltering(t *testing.T) {
	sender := &fakeSender{}
	cfg := slackCfg()
	n := NewNotifier(sender, NewCircuitBreaker(cfg.CircuitBreaker, nil), cfg)

	// Below warning: silent.
	if err := n.Notify(event(models.SeverityLow, models.EventCreated)); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	// Resolution below high: silent.
	if err := n.Notify(event(models.SeverityWarning, models.EventResolved)); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("Expected filtered events not sent, got %d", len(sender.sent))
	}

	// Resolution at high severity goes out.
	if err := n.Notify(event(models.SeverityHigh, models.EventResolved)); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("Expected high-severity resolution sent, got %d", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].text, "Resolved") {
		t.Errorf("Resolution message missing marker: %q", sender.sent[0].text)
	}
}

func TestBreakerBlocksAfterFailures(t *testing.T) {
	sender := &fakeSender{err: errors.New("slack down")}
	cfg := slackCfg()
	breaker := NewCircuitBreaker(cfg.CircuitBreaker, nil)
	n := NewNotifier(sender, breaker, cfg)

	for i := 0; i < 2; i++ {
		if err := n.Notify(event(models.SeverityCritical, models.EventCreated)); err == nil {
			t.Fatal("Expected send failure")
		}
	}
	if breaker.getState() != OPEN {
		t.Fatal("Expected breaker open after threshold failures")
	}

	sender.err = nil
	if err := n.Notify(event(models.SeverityCritical, models.EventCreated)); err == nil {
		t.Error("Expected open breaker to reject the send")
	}
	if len(sender.sent) != 0 {
		t.Errorf("Open breaker let %d messages through", len(sender.sent))
	}
}

func TestMessageFormat(t *testing.T) {
	sender := &fakeSender{}
	cfg := slackCfg()
	n := NewNotifier(sender, NewCircuitBreaker(cfg.CircuitBreaker, nil), cfg)

	ev := event(models.SeverityCritical, models.EventCreated)
	ev.Alert.CorrelationID = "group-1"
	if err := n.Notify(ev); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	text := sender.sent[0].text
	for _, want := range []string{"CRITICAL", "High CPU usage on web-01", "web-01", "cpu_usage_percent", "group-1"} {
		if !strings.Contains(text, want) {
			t.Errorf("Message missing %q: %q", want, text)
		}
	}
}
