package notify

import (
	"log"
	"sync"
	"time"

	"alertmon/internal/config"
	"alertmon/internal/metrics"
)

const (
	CLOSED    = 0
	OPEN      = 1
	HALF_OPEN = 2
)

// CircuitBreaker shields the engine from a misbehaving notification
// backend. After FailureThreshold consecutive failures it opens and
// drops sends until the timeout elapses, then probes half-open.
type CircuitBreaker struct {
	state           int
	failureCount    int
	lastFailureTime time.Time
	config          config.CircuitBreakerConfig
	mutex           sync.RWMutex
	metrics         *metrics.Metrics
}

func NewCircuitBreaker(configCB config.CircuitBreakerConfig, m *metrics.Metrics) *CircuitBreaker {
	log.Printf("Circuit breaker initialized: threshold=%d, timeout=%ds, half_open=%d",
		configCB.FailureThreshold,
		configCB.TimeoutDuration,
		configCB.HalfOpenMaxRequests)

	cb := &CircuitBreaker{
		state:   CLOSED,
		config:  configCB,
		metrics: m,
	}
	if m != nil {
		m.SetCircuitBreakerState(0)
	}
	return cb
}

func (cb *CircuitBreaker) getState() int {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) canExecute() bool {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()

	switch cb.state {
	case CLOSED:
		return true
	case OPEN:
		timeOutDuration := time.Duration(cb.config.TimeoutDuration) * time.Second
		return time.Since(cb.lastFailureTime) > timeOutDuration
	case HALF_OPEN:
		return true
	default:
		return false
	}
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	if cb.state == CLOSED && cb.failureCount >= cb.config.FailureThreshold {
		cb.state = OPEN
		log.Printf("Circuit breaker OPENED, failures: %d (threshold: %d)",
			cb.failureCount, cb.config.FailureThreshold)
		if cb.metrics != nil {
			cb.metrics.SetCircuitBreakerState(1)
		}
	}

	if cb.state == HALF_OPEN {
		cb.state = OPEN
		cb.failureCount = cb.config.FailureThreshold
		log.Printf("Circuit breaker reopened from HALF_OPEN state")
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.failureCount = 0

	if cb.state == HALF_OPEN || cb.state == OPEN {
		cb.state = CLOSED
		log.Printf("Circuit breaker CLOSED (recovered)")
		if cb.metrics != nil {
			cb.metrics.SetCircuitBreakerState(0)
		}
	}
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mutex.RLock()
	defer cb.mutex.RUnlock()
	return cb.failureCount
}
