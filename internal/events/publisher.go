// Package events publishes alert lifecycle events to Kafka for
// downstream consumers (audit, dashboards, incident tooling).
package events

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"alertmon/internal/models"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	log.Printf("Creating Kafka event publisher with brokers %s and topic %s", brokers, topic)
	return &KafkaPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:      strings.Split(brokers, ","),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: 10 * time.Second,
		}),
	}
}

// Publish serializes the event as JSON keyed by alert ID, so all
// events for one alert land in the same partition in order.
func (p *KafkaPublisher) Publish(event models.AlertEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Alert.ID.String()),
		Value: data,
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		log.Printf("Failed to write event to Kafka: %v", err)
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("Failed to close Kafka writer: %v", err)
	}
}
