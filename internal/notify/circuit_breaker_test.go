package notify

import (
	"testing"
	"time"

	"alertmon/internal/config"
)

func testCBConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		FailureThreshold:    3,
		TimeoutDuration:     1,
		HalfOpenMaxRequests: 1,
	}
}

func TestBreakerOpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreaker(testCBConfig(), nil)

	if !cb.canExecute() {
		t.Fatal("Fresh breaker should allow requests")
	}

	cb.recordFailure()
	cb.recordFailure()
	if cb.getState() != CLOSED {
		t.Error("Breaker opened below threshold")
	}
	cb.recordFailure()
	if cb.getState() != OPEN {
		t.Error("Breaker should open at threshold")
	}
	if cb.canExecute() {
		t.Error("Open breaker should block requests")
	}
}

func TestBreakerAllowsProbeAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(testCBConfig(), nil)
	for i := 0; i < 3; i++ {
		cb.recordFailure()
	}

	if cb.canExecute() {
		t.Fatal("Expected requests blocked right after opening")
	}

	// Backdate the last failure past the 1s timeout.
	cb.mutex.Lock()
	cb.lastFailureTime = time.Now().Add(-2 * time.Second)
	cb.mutex.Unlock()

	if !cb.canExecute() {
		t.Error("Expected probe allowed after timeout")
	}
}

func TestBreakerRecovers(t *testing.T) {
	cb := NewCircuitBreaker(testCBConfig(), nil)
	for i := 0; i < 3; i++ {
		cb.recordFailure()
	}

	cb.recordSuccess()
	if cb.getState() != CLOSED {
		t.Error("Breaker should close after a successful probe")
	}
	if cb.GetFailureCount() != 0 {
		t.Errorf("Expected failure count reset, got %d", cb.GetFailureCount())
	}
}

func TestSuccessResetsFailureStreak(t *testing.T) {
	cb := NewCircuitBreaker(testCBConfig(), nil)

	cb.recordFailure()
	cb.recordFailure()
	cb.recordSuccess()
	cb.recordFailure()
	cb.recordFailure()

	if cb.getState() != CLOSED {
		t.Error("Non-consecutive failures should not open the breaker")
	}
}
