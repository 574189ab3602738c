// Package notify turns alert lifecycle events into operator-facing
// messages, with severity-based routing and a circuit breaker in front
// of the transport.
package notify

import (
	"fmt"
	"log"
	"strings"

	"alertmon/internal/config"
	"alertmon/internal/models"
)

// Sender is the message transport. SlackSender is the production
// implementation.
type Sender interface {
	Send(channel, text string) error
}

type Notifier struct {
	sender   Sender
	breaker  *CircuitBreaker
	channels map[string]string
}

func NewNotifier(sender Sender, breaker *CircuitBreaker, cfg config.SlackConfig) *Notifier {
	return &Notifier{
		sender:   sender,
		breaker:  breaker,
		channels: cfg.Channels,
	}
}

// Notify formats and routes one lifecycle event. Low-severity events
// and resolution chatter below the high threshold are filtered here,
// not at the engine.
func (n *Notifier) Notify(event models.AlertEvent) error {
	alert := event.Alert

	switch event.EventType {
	case models.EventResolved:
		if !alert.Severity.ShouldNotifyResolution() {
			return nil
		}
	default:
		if !alert.Severity.ShouldNotify() {
			return nil
		}
	}

	if !n.breaker.canExecute() {
		log.Printf("Circuit breaker open, dropping notification for alert %s", alert.ID)
		return fmt.Errorf("circuit breaker open")
	}

	channel := ChannelForSeverity(string(alert.Severity), n.channels)
	text := formatMessage(event)

	if err := n.sender.Send(channel, text); err != nil {
		n.breaker.recordFailure()
		return err
	}
	n.breaker.recordSuccess()
	log.Printf("Sent %s notification for alert %s to %s", event.EventType, alert.ID, channel)
	return nil
}

func formatMessage(event models.AlertEvent) string {
	alert := event.Alert
	var b strings.Builder

	switch event.EventType {
	case models.EventCreated, models.EventFiring:
		fmt.Fprintf(&b, ":rotating_light: *[%s] %s*\n", strings.ToUpper(string(alert.Severity)), alert.Summary)
		fmt.Fprintf(&b, "%s\n", alert.Description)
	case models.EventAcknowledged:
		fmt.Fprintf(&b, ":eyes: *Acknowledged: %s*\n", alert.Summary)
		if alert.AcknowledgedBy != "" {
			fmt.Fprintf(&b, "By: %s\n", alert.AcknowledgedBy)
		}
	case models.EventResolved:
		fmt.Fprintf(&b, ":white_check_mark: *Resolved: %s*\n", alert.Summary)
		if alert.ResolutionNote != "" {
			fmt.Fprintf(&b, "%s\n", alert.ResolutionNote)
		}
	case models.EventEscalated:
		fmt.Fprintf(&b, ":arrow_double_up: *Escalated (level %d): %s*\n", alert.EscalationLevel, alert.Summary)
		fmt.Fprintf(&b, "Severity now %s\n", alert.Severity)
	default:
		fmt.Fprintf(&b, "*%s*: %s\n", event.EventType, alert.Summary)
	}

	fmt.Fprintf(&b, "Resource: `%s` | Metric: `%s`", alert.Resource, alert.Metric)
	if alert.CorrelationID != "" {
		fmt.Fprintf(&b, " | Group: `%s`", alert.CorrelationID)
	}
	return b.String()
}
