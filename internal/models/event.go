package models

import "time"

// EventType classifies lifecycle events for notification and the event bus.
type EventType string

const (
	EventCreated      EventType = "created"
	EventFiring       EventType = "firing"
	EventAcknowledged EventType = "acknowledged"
	EventResolved     EventType = "resolved"
	EventEscalated    EventType = "escalated"
	EventSuppressed   EventType = "suppressed"
	EventExpired      EventType = "expired"
)

// AlertEvent is the envelope shared by the notifier and the Kafka publisher.
type AlertEvent struct {
	Alert     *Alert    `json:"alert"`
	EventType EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}
