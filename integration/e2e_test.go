//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"alertmon/testutils"

	kfk "github.com/segmentio/kafka-go"
)

// Publish a sample and check it round-trips through the samples topic.
func TestE2ESampleRoundTrip(t *testing.T) {
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		t.Skip("KAFKA_BROKERS not set, skipping test")
	}
	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	if kafkaTopic == "" {
		t.Skip("KAFKA_TOPIC not set, skipping test")
	}

	writer := kfk.NewWriter(kfk.WriterConfig{
		Brokers:  strings.Split(kafkaBrokers, ","),
		Topic:    kafkaTopic,
		Balancer: &kfk.LeastBytes{},
	})
	defer writer.Close()

	reader := kfk.NewReader(kfk.ReaderConfig{
		Brokers:     strings.Split(kafkaBrokers, ","),
		GroupID:     fmt.Sprintf("e2e-test-%d", time.Now().Unix()),
		Topic:       kafkaTopic,
		StartOffset: kfk.FirstOffset,
		MaxWait:     1 * time.Second,
	})
	defer reader.Close()

	host, err := testutils.GetHostname()
	if err != nil {
		t.Fatalf("Failed to get hostname: %v", err)
	}

	// Unique resource so we can pick our message out of the stream.
	resource := fmt.Sprintf("%s-e2e-%d", host, time.Now().UnixNano())
	sample := testutils.CreateSample(resource, "cpu_usage_percent", 97.5)

	data, err := testutils.SerializeSample(sample)
	if err != nil {
		t.Fatalf("Serialization of sample failed due to %v", err)
	}

	err = writer.WriteMessages(context.Background(), kfk.Message{
		Key:   []byte(sample.Resource),
		Value: data,
	})
	if err != nil {
		t.Fatalf("Failed to send message: %v", err)
	}

	// Read messages until we find ours (with timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			t.Fatalf("Failed to read message: %v", err)
		}

		deserialized, err := testutils.DeserializeSample(msg.Value)
		if err != nil {
			continue
		}

		// Check if this is OUR message
		if deserialized.Resource == resource {
			if deserialized.Metric != sample.Metric || deserialized.Value != sample.Value {
				t.Logf("Original: %+v", sample)
				t.Logf("Deserialized: %+v", deserialized)
				t.Errorf("Samples don't match")
			}
			return
		}
	}
}
