package engine

import (
	"sync"
	"sync/atomic"
	"testing"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

func indexAlert(fingerprint string) *models.Alert {
	return &models.Alert{
		ID:          uuid.New(),
		Fingerprint: fingerprint,
		Status:      models.StatusPending,
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	ruleID := uuid.New()
	a := Fingerprint(ruleID, "web-01", "cpu_usage_percent")
	b := Fingerprint(ruleID, "web-01", "cpu_usage_percent")
	if a != b {
		t.Errorf("Same inputs produced different fingerprints: %s vs %s", a, b)
	}
	if a == Fingerprint(ruleID, "web-02", "cpu_usage_percent") {
		t.Error("Different resources produced the same fingerprint")
	}
	if a == Fingerprint(uuid.New(), "web-01", "cpu_usage_percent") {
		t.Error("Different rules produced the same fingerprint")
	}
}

func TestInsertIfAbsent(t *testing.T) {
	idx := NewActiveIndex()

	first := indexAlert("fp-1")
	e1, inserted := idx.InsertIfAbsent(first)
	if !inserted {
		t.Fatal("Expected first insert to win")
	}

	second := indexAlert("fp-1")
	e2, inserted := idx.InsertIfAbsent(second)
	if inserted {
		t.Fatal("Expected second insert to lose")
	}
	if e1 != e2 {
		t.Error("Losing insert did not return the winning entry")
	}
	if idx.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", idx.Len())
	}
}

func TestRemoveEvictsBothMaps(t *testing.T) {
	idx := NewActiveIndex()
	alert := indexAlert("fp-1")
	e, _ := idx.InsertIfAbsent(alert)

	e.mu.Lock()
	idx.Remove(e)
	evicted := e.evicted
	e.mu.Unlock()

	if !evicted {
		t.Error("Expected evicted flag set")
	}
	if _, ok := idx.Lookup("fp-1"); ok {
		t.Error("Fingerprint still resolvable after remove")
	}
	if _, ok := idx.LookupID(alert.ID); ok {
		t.Error("ID still resolvable after remove")
	}

	// The fingerprint slot is free for a successor.
	if _, inserted := idx.InsertIfAbsent(indexAlert("fp-1")); !inserted {
		t.Error("Expected fingerprint reusable after eviction")
	}
}

func TestConcurrentInsertSingleWinner(t *testing.T) {
	idx := NewActiveIndex()

	const workers = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, inserted := idx.InsertIfAbsent(indexAlert("fp-contended")); inserted {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Errorf("Expected exactly 1 winner, got %d", wins.Load())
	}
	if idx.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", idx.Len())
	}
}
