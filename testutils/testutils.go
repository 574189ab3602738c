// Package testutils holds sample builders shared by the integration tests.
package testutils

import (
	"encoding/json"
	"os"
	"time"

	"alertmon/internal/models"
)

func CreateSample(resource, metric string, value float64) *models.MetricSample {
	return &models.MetricSample{
		Resource:  resource,
		Metric:    metric,
		Value:     value,
		Labels:    map[string]string{"source": "e2e"},
		Timestamp: time.Now().UTC(),
	}
}

func SerializeSample(sample *models.MetricSample) ([]byte, error) {
	return json.Marshal(sample)
}

func DeserializeSample(data []byte) (*models.MetricSample, error) {
	var sample models.MetricSample
	if err := json.Unmarshal(data, &sample); err != nil {
		return nil, err
	}
	return &sample, nil
}

func GetHostname() (string, error) {
	return os.Hostname()
}
