package models

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		status   Status
		terminal bool
		ack      bool
		resolve  bool
		escalate bool
		suppress bool
		close    bool
	}{
		{StatusPending, false, true, true, false, true, false},
		{StatusFiring, false, true, true, true, true, false},
		{StatusAcknowledged, false, false, true, false, true, false},
		{StatusEscalated, false, true, true, true, true, false},
		{StatusSuppressed, false, false, true, false, false, true},
		{StatusResolved, true, false, false, false, false, true},
		{StatusClosed, true, false, false, false, false, false},
		{StatusExpired, true, false, false, false, false, false},
	}

	for _, tc := range cases {
		if got := tc.status.Terminal(); got != tc.terminal {
			t.Errorf("%s: Terminal() = %v, want %v", tc.status, got, tc.terminal)
		}
		if got := tc.status.CanAcknowledge(); got != tc.ack {
			t.Errorf("%s: CanAcknowledge() = %v, want %v", tc.status, got, tc.ack)
		}
		if got := tc.status.CanResolve(); got != tc.resolve {
			t.Errorf("%s: CanResolve() = %v, want %v", tc.status, got, tc.resolve)
		}
		if got := tc.status.CanEscalate(); got != tc.escalate {
			t.Errorf("%s: CanEscalate() = %v, want %v", tc.status, got, tc.escalate)
		}
		if got := tc.status.CanSuppress(); got != tc.suppress {
			t.Errorf("%s: CanSuppress() = %v, want %v", tc.status, got, tc.suppress)
		}
		if got := tc.status.CanClose(); got != tc.close {
			t.Errorf("%s: CanClose() = %v, want %v", tc.status, got, tc.close)
		}
	}
}

func TestActivePopulation(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusFiring} {
		if !s.Active() {
			t.Errorf("Expected %s to be active", s)
		}
	}
	for _, s := range []Status{StatusAcknowledged, StatusEscalated, StatusSuppressed, StatusResolved} {
		if s.Active() {
			t.Errorf("Expected %s not to be active", s)
		}
	}
}
