// Package evaluator compares metric samples against rule thresholds.
package evaluator

import (
	"fmt"

	"alertmon/internal/models"
)

// Evaluate checks one sample against one rule and reports whether the
// threshold condition holds. Unknown operators are an error, not a
// silent pass.
func Evaluate(rule *models.AlertRule, sample *models.MetricSample) (*models.EvaluationResult, error) {
	triggered, err := compare(rule.Operator, sample.Value, rule.Threshold)
	if err != nil {
		return nil, fmt.Errorf("evaluating rule %s: %w", rule.Name, err)
	}
	return &models.EvaluationResult{
		Rule:           rule,
		Resource:       sample.Resource,
		Metric:         sample.Metric,
		Triggered:      triggered,
		ThresholdValue: rule.Threshold,
		ActualValue:    sample.Value,
	}, nil
}

func compare(operator string, value, threshold float64) (bool, error) {
	switch operator {
	case "gt", ">":
		return value > threshold, nil
	case "gte", ">=":
		return value >= threshold, nil
	case "lt", "<":
		return value < threshold, nil
	case "lte", "<=":
		return value <= threshold, nil
	case "eq", "==":
		return value == threshold, nil
	case "ne", "!=":
		return value != threshold, nil
	default:
		return false, fmt.Errorf("unsupported operator %q", operator)
	}
}
