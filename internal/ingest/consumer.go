// Package ingest consumes metric samples from Kafka and feeds them
// through rule evaluation into the alert engine.
package ingest

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"alertmon/internal/engine"
	"alertmon/internal/evaluator"
	"alertmon/internal/models"
	"alertmon/internal/rules"

	"github.com/opentracing/opentracing-go"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
	engine *engine.Engine
	rules  *rules.Store
	tracer opentracing.Tracer
}

func NewConsumer(brokers, topic, groupID string, eng *engine.Engine, ruleStore *rules.Store, tracer opentracing.Tracer) *Consumer {
	log.Printf("Creating Kafka consumer with brokers %s and topic %s", brokers, topic)
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  strings.Split(brokers, ","),
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 10e3, // 10KB
			MaxBytes: 10e6, // 10MB
		}),
		engine: eng,
		rules:  ruleStore,
		tracer: tracer,
	}
}

// Run reads samples until ctx is cancelled. A malformed payload is
// logged and skipped; only reader failures end the loop.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Sample consumer stopping")
				return nil
			}
			log.Printf("Could not read message: %v", err)
			return err
		}

		if err := c.processMessage(msg.Value); err != nil {
			log.Printf("Error processing message: %v", err)
		}
	}
}

func (c *Consumer) processMessage(payload []byte) error {
	receivedAt := time.Now().UTC()

	var sample models.MetricSample
	if err := json.Unmarshal(payload, &sample); err != nil {
		return err
	}

	span := c.tracer.StartSpan("alertmon-sample-processing")
	defer span.Finish()
	span.SetTag("resource", sample.Resource)
	span.SetTag("metric", sample.Metric)

	now := time.Now().UTC()
	matched := 0
	for _, rule := range c.rules.Matching(sample.Metric) {
		if !c.rules.ShouldEvaluate(rule, now) {
			continue
		}

		result, err := evaluator.Evaluate(rule, &sample)
		if err != nil {
			log.Printf("Rule %s evaluation failed: %v", rule.Name, err)
			continue
		}

		evalSpan := opentracing.StartSpan("rule-evaluation", opentracing.ChildOf(span.Context()))
		evalSpan.SetTag("rule", rule.Name)
		evalSpan.SetTag("triggered", result.Triggered)
		c.engine.Process(result)
		evalSpan.Finish()
		matched++
	}

	span.SetTag("rules_matched", matched)
	span.SetTag("ingest_latency", time.Since(receivedAt))
	return nil
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("Failed to close Kafka reader: %v", err)
	}
}
