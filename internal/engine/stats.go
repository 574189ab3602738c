package engine

import (
	"sync/atomic"
	"time"
)

// Stats keeps the pipeline's running counters. Counters only go up;
// gauges are read from the live index and group table at snapshot time.
type Stats struct {
	processed    atomic.Int64
	correlated   atomic.Int64
	duplicates   atomic.Int64
	autoResolved atomic.Int64
}

type StatsSnapshot struct {
	TotalAlertsProcessed    int64     `json:"total_alerts_processed"`
	CorrelatedAlerts        int64     `json:"correlated_alerts"`
	DuplicateAlerts         int64     `json:"duplicate_alerts"`
	AutoResolvedAlerts      int64     `json:"auto_resolved_alerts"`
	ActiveAlerts            int       `json:"active_alerts"`
	ActiveCorrelationGroups int       `json:"active_correlation_groups"`
	CorrelationRate         float64   `json:"correlation_rate"`
	Timestamp               time.Time `json:"timestamp"`
}

// correlationRate is a percentage; 0 when nothing was processed yet.
func (s *Stats) correlationRate() float64 {
	total := s.processed.Load()
	if total == 0 {
		return 0.0
	}
	return float64(s.correlated.Load()) / float64(total) * 100
}
