package evaluator

import (
	"testing"
	"time"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

func sample(value float64) *models.MetricSample {
	return &models.MetricSample{
		Resource:  "web-01",
		Metric:    "cpu_usage_percent",
		Value:     value,
		Timestamp: time.Now().UTC(),
	}
}

func rule(operator string, threshold float64) *models.AlertRule {
	return &models.AlertRule{
		ID:        uuid.New(),
		Name:      "High CPU usage",
		Metric:    "cpu_usage_percent",
		Severity:  models.SeverityHigh,
		Operator:  operator,
		Threshold: threshold,
	}
}

func TestOperators(t *testing.T) {
	cases := []struct {
		operator  string
		value     float64
		threshold float64
		want      bool
	}{
		{"gt", 95, 90, true},
		{"gt", 90, 90, false},
		{">", 95, 90, true},
		{"gte", 90, 90, true},
		{">=", 89, 90, false},
		{"lt", 5, 10, true},
		{"<", 10, 10, false},
		{"lte", 10, 10, true},
		{"<=", 11, 10, false},
		{"eq", 10, 10, true},
		{"==", 11, 10, false},
		{"ne", 11, 10, true},
		{"!=", 10, 10, false},
	}

	for _, tc := range cases {
		result, err := Evaluate(rule(tc.operator, tc.threshold), sample(tc.value))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.operator, err)
		}
		if result.Triggered != tc.want {
			t.Errorf("%s: %v vs %v triggered=%v, want %v",
				tc.operator, tc.value, tc.threshold, result.Triggered, tc.want)
		}
	}
}

func TestResultCarriesContext(t *testing.T) {
	r := rule("gt", 90)
	result, err := Evaluate(r, sample(97.5))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Rule != r {
		t.Error("Result does not reference the evaluated rule")
	}
	if result.Resource != "web-01" || result.Metric != "cpu_usage_percent" {
		t.Errorf("Result missing sample context: %+v", result)
	}
	if result.ActualValue != 97.5 || result.ThresholdValue != 90 {
		t.Errorf("Result values wrong: %+v", result)
	}
}

func TestUnknownOperator(t *testing.T) {
	if _, err := Evaluate(rule("between", 90), sample(95)); err == nil {
		t.Error("Expected error for unknown operator")
	}
}
