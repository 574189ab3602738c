package models

import "time"

// MetricSample is one measurement published by the agent.
type MetricSample struct {
	Resource  string            `json:"resource"`
	Metric    string            `json:"metric"`
	Value     float64           `json:"value"`
	Labels    map[string]string `json:"labels,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// EvaluationResult is the outcome of evaluating one rule against one
// sample. The engine consumes it as an opaque trigger decision.
type EvaluationResult struct {
	Rule           *AlertRule
	Resource       string
	Metric         string
	Triggered      bool
	ThresholdValue float64
	ActualValue    float64
}
