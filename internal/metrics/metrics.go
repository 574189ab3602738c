package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {

	// Counters
	alertsCreated      *prometheus.CounterVec // Has labels: severity, rule
	alertsDuplicate    prometheus.Counter
	alertsCorrelated   prometheus.Counter
	alertsAutoResolved prometheus.Counter
	suppressionDrops   prometheus.Counter
	notifications      *prometheus.CounterVec // Has labels: status (success/failure)
	eventsPublished    *prometheus.CounterVec // Has labels: status (success/failure)
	persistenceErrors  prometheus.Counter

	// Gauges
	activeAlerts        prometheus.Gauge
	correlationGroups   prometheus.Gauge
	circuitBreakerState prometheus.Gauge

	// Histograms
	alertProcessingTime prometheus.Histogram
}

func NewMetrics() *Metrics {

	m := &Metrics{
		alertsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alertmon_alerts_created_total",
				Help: "Total number of alerts created",
			},
			[]string{"severity", "rule"},
		),
		alertsDuplicate: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "alertmon_alerts_duplicate_total",
				Help: "Total number of trigger events collapsed into existing alerts",
			},
		),
		alertsCorrelated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "alertmon_alerts_correlated_total",
				Help: "Total number of alerts joined into correlation groups",
			},
		),
		alertsAutoResolved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "alertmon_alerts_auto_resolved_total",
				Help: "Total number of alerts auto-resolved after the condition cleared",
			},
		),
		suppressionDrops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "alertmon_suppression_drops_total",
				Help: "Trigger events dropped inside a rule suppression window",
			},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alertmon_notifications_sent_total",
				Help: "Total number of notifications handed to the dispatcher",
			},
			[]string{"status"},
		),
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alertmon_events_published_total",
				Help: "Total number of alert events published to the bus",
			},
			[]string{"status"},
		),
		persistenceErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "alertmon_persistence_errors_total",
				Help: "Alert saves that failed and were flagged for reconciliation",
			},
		),
		activeAlerts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "alertmon_active_alerts",
				Help: "Current number of alerts in the active index",
			},
		),
		correlationGroups: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "alertmon_correlation_groups",
				Help: "Current number of live correlation groups",
			},
		),
		circuitBreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "alertmon_circuit_breaker_state",
			Help: "Notification circuit breaker state (0=CLOSED, 1=OPEN, 2=HALF_OPEN)",
		},
		),
		alertProcessingTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "alertmon_alert_processing_duration_seconds",
				Help: "Time taken to process one evaluation result",
			},
		),
	}

	prometheus.MustRegister(m.alertsCreated)
	prometheus.MustRegister(m.alertsDuplicate)
	prometheus.MustRegister(m.alertsCorrelated)
	prometheus.MustRegister(m.alertsAutoResolved)
	prometheus.MustRegister(m.suppressionDrops)
	prometheus.MustRegister(m.notifications)
	prometheus.MustRegister(m.eventsPublished)
	prometheus.MustRegister(m.persistenceErrors)
	prometheus.MustRegister(m.activeAlerts)
	prometheus.MustRegister(m.correlationGroups)
	prometheus.MustRegister(m.circuitBreakerState)
	prometheus.MustRegister(m.alertProcessingTime)

	return m
}

func (m *Metrics) IncAlertsCreated(severity, rule string) {
	m.alertsCreated.WithLabelValues(severity, rule).Inc()
}

func (m *Metrics) IncDuplicates() {
	m.alertsDuplicate.Inc()
}

func (m *Metrics) IncCorrelated() {
	m.alertsCorrelated.Inc()
}

func (m *Metrics) IncAutoResolved() {
	m.alertsAutoResolved.Inc()
}

func (m *Metrics) IncSuppressionDrops() {
	m.suppressionDrops.Inc()
}

func (m *Metrics) IncNotifications(status string) {
	m.notifications.WithLabelValues(status).Inc()
}

func (m *Metrics) IncEventsPublished(status string) {
	m.eventsPublished.WithLabelValues(status).Inc()
}

func (m *Metrics) IncPersistenceErrors() {
	m.persistenceErrors.Inc()
}

func (m *Metrics) SetActiveAlerts(count float64) {
	m.activeAlerts.Set(count)
}

func (m *Metrics) SetCorrelationGroups(count float64) {
	m.correlationGroups.Set(count)
}

func (m *Metrics) SetCircuitBreakerState(state float64) {
	m.circuitBreakerState.Set(state)
}

func (m *Metrics) SetAlertProcessingTime(seconds float64) {
	m.alertProcessingTime.Observe(seconds)
}
