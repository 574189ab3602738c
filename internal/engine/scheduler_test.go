package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSchedulerFires(t *testing.T) {
	s := NewScheduler()
	var fired atomic.Int32

	id := uuid.New()
	s.Schedule(id, 5*time.Millisecond, func() { fired.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Timer never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected fired timer removed, %d pending", s.Pending())
	}
}

func TestSchedulerCancelIsIdempotent(t *testing.T) {
	s := NewScheduler()
	var fired atomic.Int32

	id := uuid.New()
	s.Schedule(id, 50*time.Millisecond, func() { fired.Add(1) })
	s.Cancel(id)
	s.Cancel(id) // second cancel is a no-op

	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("Cancelled timer fired anyway")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.Pending())
	}
}

func TestSchedulerReplaceTimer(t *testing.T) {
	s := NewScheduler()
	var first, second atomic.Int32

	id := uuid.New()
	s.Schedule(id, 50*time.Millisecond, func() { first.Add(1) })
	s.Schedule(id, 5*time.Millisecond, func() { second.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for second.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Replacement timer never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)
	if first.Load() != 0 {
		t.Error("Replaced timer fired anyway")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 5; i++ {
		s.Schedule(uuid.New(), time.Hour, func() {})
	}
	if s.Pending() != 5 {
		t.Fatalf("Expected 5 pending, got %d", s.Pending())
	}
	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending after CancelAll, got %d", s.Pending())
	}
}
